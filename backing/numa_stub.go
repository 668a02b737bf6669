//go:build (!linux && !windows) || (linux && !cgo)
// +build !linux,!windows linux,!cgo

// File: backing/numa_stub.go
// Author: momentics <momentics@gmail.com>
//
// No NUMA support on this platform; NUMAAllocator falls back to the heap.

package backing

func createRawNUMAAllocator() rawNUMAAllocator {
	return nil
}
