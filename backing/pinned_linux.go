//go:build linux
// +build linux

// File: backing/pinned_linux.go
// Author: momentics <momentics@gmail.com>
//
// Pinned (page-locked) host memory via an anonymous private mmap plus an
// mlock, matching the allocate-raw-virtual-memory pattern for off-heap
// buffers: map memory outside the Go heap, then page-lock it so it cannot
// be swapped out from under a DMA-style transfer. If mlock fails, the
// mapping is released and Alloc returns an error.

package backing

import (
	"fmt"

	"golang.org/x/sys/unix"
)

type linuxPinnedAllocator struct{}

func createRawPinnedAllocator() rawPinnedAllocator {
	return linuxPinnedAllocator{}
}

func (linuxPinnedAllocator) Alloc(size int) ([]byte, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("pinned: mmap of %d bytes failed: %w", size, err)
	}
	if err := unix.Mlock(data); err != nil {
		_ = unix.Munmap(data)
		return nil, fmt.Errorf("pinned: mlock of %d bytes failed: %w", size, err)
	}
	return data, nil
}

func (linuxPinnedAllocator) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	_ = unix.Munlock(buf)
	_ = unix.Munmap(buf)
}
