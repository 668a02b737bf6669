//go:build linux && cgo
// +build linux,cgo

// File: backing/numa_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux NUMA allocation via libnuma through cgo.

package backing

/*
#cgo LDFLAGS: -lnuma
#include <numa.h>
#include <stdlib.h>

void* go_numa_alloc(int size, int node) {
	if (numa_available() == -1 || node < 0) {
		return malloc(size);
	}
	return numa_alloc_onnode(size, node);
}

void go_numa_free(void *mem, int size) {
	numa_free(mem, size);
}
*/
import "C"
import (
	"fmt"
	"unsafe"
)

type linuxNUMAAllocator struct{}

func createRawNUMAAllocator() rawNUMAAllocator {
	return linuxNUMAAllocator{}
}

func (linuxNUMAAllocator) Alloc(size int, node int) ([]byte, error) {
	ptr := C.go_numa_alloc(C.int(size), C.int(node))
	if ptr == nil {
		return nil, fmt.Errorf("numa: allocation of %d bytes on node %d failed", size, node)
	}
	return unsafe.Slice((*byte)(ptr), size), nil
}

func (linuxNUMAAllocator) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	C.go_numa_free(unsafe.Pointer(&buf[0]), C.int(len(buf)))
}
