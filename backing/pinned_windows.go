//go:build windows
// +build windows

// File: backing/pinned_windows.go
// Author: momentics <momentics@gmail.com>
//
// Pinned (page-locked) host memory via VirtualAlloc plus VirtualLock.

package backing

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

type windowsPinnedAllocator struct{}

func createRawPinnedAllocator() rawPinnedAllocator {
	return windowsPinnedAllocator{}
}

func (windowsPinnedAllocator) Alloc(size int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, fmt.Errorf("pinned: VirtualAlloc of %d bytes failed: %w", size, err)
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	if err := windows.VirtualLock(addr, uintptr(size)); err != nil {
		_ = windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
		return nil, fmt.Errorf("pinned: VirtualLock of %d bytes failed: %w", size, err)
	}
	return buf, nil
}

func (windowsPinnedAllocator) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	addr := uintptr(unsafe.Pointer(&buf[0]))
	_ = windows.VirtualUnlock(addr, uintptr(len(buf)))
	_ = windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}
