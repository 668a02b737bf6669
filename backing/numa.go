// File: backing/numa.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral NUMA-aware allocator. The raw byte-level allocation is
// delegated to a platform-specific rawNUMAAllocator (numa_linux.go via
// libnuma through cgo, numa_windows.go via VirtualAllocExNuma, numa_stub.go
// falling back to the plain heap elsewhere); this file only reinterprets
// the returned bytes as a []T and tracks the preferred node.

package backing

import (
	"sync/atomic"
	"unsafe"

	"github.com/momentics/buffer-recycler/api"
)

// rawNUMAAllocator allocates raw byte slices pinned to a NUMA node.
type rawNUMAAllocator interface {
	Alloc(size int, node int) ([]byte, error)
	Free(buf []byte)
}

var preferredNUMANode atomic.Int64

func init() {
	preferredNUMANode.Store(-1)
}

// SetPreferredNUMANode sets the NUMA node new NUMAAllocator allocations
// target. -1 (the default) lets the platform layer fall back to the
// plain heap. NUMAAllocator must be zero-value constructible to satisfy
// api.BackingAllocator, so the preferred node is process-wide rather than
// a per-instance field.
func SetPreferredNUMANode(node int) {
	preferredNUMANode.Store(int64(node))
}

// NUMAAllocator allocates elements pinned to the configured preferred
// NUMA node, falling back to the plain heap where NUMA placement is
// unsupported or unavailable.
type NUMAAllocator[T any] struct{}

func (NUMAAllocator[T]) Allocate(n int) ([]T, error) {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	raw := createRawNUMAAllocator()
	if raw == nil || elemSize == 0 {
		return make([]T, n), nil
	}
	node := int(preferredNUMANode.Load())
	bs, err := raw.Alloc(n*elemSize, node)
	if err != nil {
		return nil, api.ErrOutOfMemory.WithContext("cause", err.Error())
	}
	if bs == nil {
		return make([]T, n), nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&bs[0])), n), nil
}

func (NUMAAllocator[T]) Deallocate(buf []T) {
	if len(buf) == 0 {
		return
	}
	raw := createRawNUMAAllocator()
	if raw == nil {
		return
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	bs := unsafe.Slice((*byte)(unsafe.Pointer(&buf[0])), len(buf)*elemSize)
	raw.Free(bs)
}

var _ api.BackingAllocator[byte] = NUMAAllocator[byte]{}
