// File: alloc/facade.go
// Author: momentics <momentics@gmail.com>

package alloc

import (
	"github.com/momentics/buffer-recycler/api"
	"github.com/momentics/buffer-recycler/pool"
)

// RecycleAllocator recycles memory only: every buffer it hands out is
// raw, and Destroy clears element state before the buffer goes back to
// the pool.
type RecycleAllocator[T any, A api.BackingAllocator[T]] struct{}

func (RecycleAllocator[T, A]) Allocate(n int) ([]T, error) {
	return pool.Get[T, A](n, false, -1)
}

func (RecycleAllocator[T, A]) Deallocate(buf []T, n int) error {
	return pool.MarkUnused[T, A](buf, n, -1)
}

// Construct value-initialises every element, matching the state a fresh
// allocation already has — provided as a named step so callers write the
// same allocate/construct/use/destroy/deallocate sequence regardless of
// flavour.
func (RecycleAllocator[T, A]) Construct(buf []T) {
	clear(buf)
}

// Destroy clears element state before the buffer is returned to the pool.
func (RecycleAllocator[T, A]) Destroy(buf []T) {
	clear(buf)
}

// Equal reports whether other names the same (T, A) pair.
func (RecycleAllocator[T, A]) Equal(other any) bool {
	_, ok := other.(RecycleAllocator[T, A])
	return ok
}

// AggressiveRecycleAllocator recycles memory and element state: a buffer
// handed out may already hold a previous owner's constructed elements.
// Construct and Destroy are deliberately no-ops — reusing prior state
// without re-running either is the entire point of this flavour.
type AggressiveRecycleAllocator[T any, A api.BackingAllocator[T]] struct{}

func (AggressiveRecycleAllocator[T, A]) Allocate(n int) ([]T, error) {
	return pool.Get[T, A](n, true, -1)
}

func (AggressiveRecycleAllocator[T, A]) Deallocate(buf []T, n int) error {
	return pool.MarkUnused[T, A](buf, n, -1)
}

func (AggressiveRecycleAllocator[T, A]) Construct(buf []T) {}

func (AggressiveRecycleAllocator[T, A]) Destroy(buf []T) {}

func (AggressiveRecycleAllocator[T, A]) Equal(other any) bool {
	_, ok := other.(AggressiveRecycleAllocator[T, A])
	return ok
}
