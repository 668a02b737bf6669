// File: async/executor.go
// Author: momentics <momentics@gmail.com>
//
// Executor dispatches Task values onto a github.com/Jeffail/tunny worker
// pool rather than a hand-rolled queue: Process blocks the calling
// goroutine until a worker has run the job, so Submit just
// fires that call off in its own goroutine to keep the non-blocking,
// fire-and-forget contract the rest of this package expects. Resize
// rebuilds the pool at the new size and retires the old one; there is
// no need to track individual worker goroutines the way a local-queue
// design would.

package async

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/Jeffail/tunny"

	"github.com/momentics/buffer-recycler/affinity"
)

// ErrExecutorClosed is returned by Submit once the executor has been
// closed.
var ErrExecutorClosed = errors.New("async: executor is closed")

// Task is a unit of work submitted to an Executor.
type Task func()

// Executor manages a tunny worker pool sized to numWorkers goroutines.
type Executor struct {
	mu      sync.Mutex
	pool    *tunny.Pool
	workers int
	pinCPUs bool
	closed  atomic.Bool
}

// NewExecutor creates an Executor backed by numWorkers goroutines
// (runtime.NumCPU() when numWorkers <= 0). pinCPUs, when true, has each
// dispatched task pin the goroutine running it to a CPU chosen by
// round-robin over the pool's size before running.
func NewExecutor(numWorkers int, pinCPUs bool) *Executor {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	e := &Executor{workers: numWorkers, pinCPUs: pinCPUs}
	e.pool = e.buildPool(numWorkers)
	return e
}

// buildPool constructs a fresh tunny pool of the given size whose job
// function recovers from a panicking task and, when pinCPUs is set,
// pins the executing goroutine to CPU index (dispatch count mod size).
func (e *Executor) buildPool(size int) *tunny.Pool {
	pinCPUs := e.pinCPUs
	var dispatchCount atomic.Int64

	pool := tunny.NewFunc(size, func(payload interface{}) interface{} {
		if pinCPUs {
			idx := int(dispatchCount.Add(1)-1) % size
			_ = affinity.SetAffinity(idx)
		}
		if task, ok := payload.(Task); ok {
			safeExecute(task)
		}
		return nil
	})
	return pool
}

// Submit dispatches task to the pool without waiting for it to run.
func (e *Executor) Submit(task Task) error {
	if e.closed.Load() {
		return ErrExecutorClosed
	}
	e.mu.Lock()
	pool := e.pool
	e.mu.Unlock()
	go func() {
		_ = pool.Process(task)
	}()
	return nil
}

// Resize replaces the pool with one sized to newCount workers, closing
// the previous pool once the new one is in place.
func (e *Executor) Resize(newCount int) {
	if newCount <= 0 {
		newCount = 1
	}
	e.mu.Lock()
	old := e.pool
	e.workers = newCount
	e.pool = e.buildPool(newCount)
	e.mu.Unlock()
	old.Close()
}

// Close shuts the executor down, rejecting any further Submit calls.
func (e *Executor) Close() {
	if e.closed.CompareAndSwap(false, true) {
		e.mu.Lock()
		pool := e.pool
		e.mu.Unlock()
		pool.Close()
	}
}

// NumWorkers returns the current worker count.
func (e *Executor) NumWorkers() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.workers
}

func safeExecute(task Task) {
	defer func() { recover() }()
	task()
}
