// File: alloc/aliases.go
// Author: momentics <momentics@gmail.com>
//
// Thin convenience aliases naming a façade together with a specific
// backing allocator, so callers who don't care about backing-allocator
// choice don't have to spell out the pair at every call site.

package alloc

import "github.com/momentics/buffer-recycler/backing"

// Std is the standard-recycling façade over the system heap.
type Std[T any] = RecycleAllocator[T, backing.SystemAllocator[T]]

// AggressiveStd is the aggressive-recycling façade over the system heap.
type AggressiveStd[T any] = AggressiveRecycleAllocator[T, backing.SystemAllocator[T]]

// NUMA is the standard-recycling façade over NUMA-local memory.
type NUMA[T any] = RecycleAllocator[T, backing.NUMAAllocator[T]]

// Pinned is the standard-recycling façade over pinned host memory.
type Pinned[T any] = RecycleAllocator[T, backing.PinnedAllocator[T]]
