// File: pool/recycle.go
// Author: momentics <momentics@gmail.com>

package pool

import (
	"github.com/momentics/buffer-recycler/api"
	"github.com/momentics/buffer-recycler/internal/core"
)

// Get returns a buffer of count elements of type T, backed by allocator
// A. aggressive selects whether the buffer's element state is preserved
// across recycle cycles (true) or always reset to raw memory (false).
// hint names a preferred shard in [0, N); pass -1 for none, which always
// resolves to shard 0.
func Get[T any, A api.BackingAllocator[T]](count int, aggressive bool, hint int) ([]T, error) {
	return core.GetPool[T, A]().Get(count, aggressive, hint)
}

// MarkUnused returns buf, previously obtained from Get with the given
// count, to the pool. hint, if not -1, is tried first before the pool
// falls back to searching every shard.
func MarkUnused[T any, A api.BackingAllocator[T]](buf []T, count int, hint int) error {
	return core.GetPool[T, A]().MarkUnused(buf, count, hint)
}

// Stats returns a per-shard counter snapshot for the (T, A) typed pool.
func Stats[T any, A api.BackingAllocator[T]]() api.PoolStats {
	return core.GetPool[T, A]().Stats()
}

// Clean destroys every buffer owned by the (T, A) typed pool, in-use or
// not, and resets its shards to empty. Callers must ensure no goroutine
// still holds a buffer from this pool before calling this.
func Clean[T any, A api.BackingAllocator[T]]() {
	core.GetPool[T, A]().Clean()
}

// Cleanup sweeps the free list of every typed pool created so far in the
// process, returning their unused buffers to their backing allocators.
// In-use buffers are untouched.
func Cleanup() {
	core.Cleanup()
}

// ForceCleanup destroys every buffer owned by every typed pool created so
// far in the process, in-use or not. Intended for process shutdown or
// test teardown, not for routine use.
func ForceCleanup() {
	core.ForceCleanup()
}
