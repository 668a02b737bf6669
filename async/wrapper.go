// File: async/wrapper.go
// Author: momentics <momentics@gmail.com>
//
// Thin wrappers for dispatching a pool.Get/pool.MarkUnused call through
// an Executor instead of running it on the calling goroutine. This is
// unrelated glue around the recycling engine, not part of it — a caller
// that doesn't need off-goroutine dispatch can call pool.Get directly.

package async

import (
	"github.com/momentics/buffer-recycler/api"
	"github.com/momentics/buffer-recycler/pool"
)

// GetResult carries the outcome of an asynchronously dispatched Get.
type GetResult[T any] struct {
	Buf []T
	Err error
}

// PostGet submits a Get call to exec without waiting for the result.
func PostGet[T any, A api.BackingAllocator[T]](exec *Executor, count int, aggressive bool, hint int) error {
	return exec.Submit(func() {
		_, _ = pool.Get[T, A](count, aggressive, hint)
	})
}

// AsyncGet submits a Get call to exec and returns a channel that receives
// its result exactly once.
func AsyncGet[T any, A api.BackingAllocator[T]](exec *Executor, count int, aggressive bool, hint int) (<-chan GetResult[T], error) {
	out := make(chan GetResult[T], 1)
	err := exec.Submit(func() {
		buf, err := pool.Get[T, A](count, aggressive, hint)
		out <- GetResult[T]{Buf: buf, Err: err}
	})
	if err != nil {
		close(out)
		return nil, err
	}
	return out, nil
}

// PostMarkUnused submits a MarkUnused call to exec without waiting for
// the result.
func PostMarkUnused[T any, A api.BackingAllocator[T]](exec *Executor, buf []T, count int, hint int) error {
	return exec.Submit(func() {
		_ = pool.MarkUnused[T, A](buf, count, hint)
	})
}

// AsyncMarkUnused submits a MarkUnused call to exec and returns a channel
// that receives its error exactly once.
func AsyncMarkUnused[T any, A api.BackingAllocator[T]](exec *Executor, buf []T, count int, hint int) (<-chan error, error) {
	out := make(chan error, 1)
	err := exec.Submit(func() {
		out <- pool.MarkUnused[T, A](buf, count, hint)
	})
	if err != nil {
		close(out)
		return nil, err
	}
	return out, nil
}
