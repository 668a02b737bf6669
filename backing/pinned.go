// File: backing/pinned.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral pinned-memory allocator, backed by a raw byte-level
// rawPinnedAllocator (pinned_linux.go, pinned_windows.go, or a heap
// fallback elsewhere).

package backing

import (
	"unsafe"

	"github.com/momentics/buffer-recycler/api"
)

type rawPinnedAllocator interface {
	Alloc(size int) ([]byte, error)
	Free(buf []byte)
}

// PinnedAllocator allocates elements in page-locked host memory, suited
// to staging buffers that cross a DMA-style boundary. Falls back to the
// plain heap where page-locking is unsupported.
type PinnedAllocator[T any] struct{}

func (PinnedAllocator[T]) Allocate(n int) ([]T, error) {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	raw := createRawPinnedAllocator()
	if raw == nil || elemSize == 0 {
		return make([]T, n), nil
	}
	bs, err := raw.Alloc(n * elemSize)
	if err != nil {
		return nil, api.ErrOutOfMemory.WithContext("cause", err.Error())
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&bs[0])), n), nil
}

func (PinnedAllocator[T]) Deallocate(buf []T) {
	if len(buf) == 0 {
		return
	}
	raw := createRawPinnedAllocator()
	if raw == nil {
		return
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	bs := unsafe.Slice((*byte)(unsafe.Pointer(&buf[0])), len(buf)*elemSize)
	raw.Free(bs)
}
