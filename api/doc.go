// Package api defines the contracts shared across the buffer-recycler
// library: the backing-allocator interface that concrete collaborators
// implement, the structured error type raised by pool operations, and the
// statistics snapshot exposed for diagnostics.
package api
