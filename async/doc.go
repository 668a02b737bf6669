// Package async provides dispatch glue for running pool operations on a
// worker-goroutine pool instead of the calling goroutine. It holds no
// pool state of its own — Executor just runs arbitrary tasks, and Post/
// Async in wrapper.go are thin conveniences for submitting a pool.Get or
// pool.MarkUnused call through it.
package async
