// Package pool is the public entry point to the buffer-recycling engine:
// Get and MarkUnused request and return buffers from the typed pool for a
// given element type and backing allocator, Cleanup and ForceCleanup sweep
// every typed pool in the process, and Stats exposes one pool's counters.
//
// The recycling policy, shard layout, and locking discipline live in
// internal/core; this package only instantiates the generic engine per
// (T, A) pair and forwards calls to it.
package pool
