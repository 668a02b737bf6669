//go:build windows
// +build windows

// File: backing/numa_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows NUMA allocation via VirtualAllocExNuma/VirtualFree.

package backing

import (
	"fmt"
	"syscall"
	"unsafe"
)

const (
	memCommit     = 0x00001000
	memReserve    = 0x00002000
	memRelease    = 0x8000
	pageReadWrite = 0x04
)

type windowsNUMAAllocator struct{}

func createRawNUMAAllocator() rawNUMAAllocator {
	return windowsNUMAAllocator{}
}

func (windowsNUMAAllocator) Alloc(size int, node int) ([]byte, error) {
	kernel32 := syscall.NewLazyDLL("kernel32.dll")
	procAlloc := kernel32.NewProc("VirtualAllocExNuma")
	procCurrentProcess := kernel32.NewProc("GetCurrentProcess")
	hProc, _, _ := procCurrentProcess.Call()
	ptr, _, err := procAlloc.Call(
		hProc, 0, uintptr(size),
		uintptr(memReserve|memCommit), uintptr(pageReadWrite), uintptr(node),
	)
	if ptr == 0 {
		return nil, fmt.Errorf("numa: VirtualAllocExNuma failed: %v", err)
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size), nil
}

func (windowsNUMAAllocator) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	kernel32 := syscall.NewLazyDLL("kernel32.dll")
	procFree := kernel32.NewProc("VirtualFree")
	addr := uintptr(unsafe.Pointer(&buf[0]))
	procFree.Call(addr, 0, uintptr(memRelease))
}
