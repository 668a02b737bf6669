// Package backing provides the concrete collaborators a typed pool
// allocates raw buffers from: a plain system-heap allocator, a NUMA-aware
// allocator, and a pinned (page-locked) host-memory allocator. Each
// implements api.BackingAllocator[T] and is selected by naming it as the
// second type parameter to pool.Get or alloc.RecycleAllocator — see
// alloc.Std, alloc.NUMA and alloc.Pinned for the common pairings.
package backing
