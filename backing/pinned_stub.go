//go:build !linux && !windows
// +build !linux,!windows

// File: backing/pinned_stub.go
// Author: momentics <momentics@gmail.com>
//
// No page-locking support on this platform; PinnedAllocator falls back
// to the heap.

package backing

func createRawPinnedAllocator() rawPinnedAllocator {
	return nil
}
