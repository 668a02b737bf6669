//go:build linux
// +build linux

// File: affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux thread affinity via sched_setaffinity, through the same
// golang.org/x/sys/unix package the backing allocators use for mmap and
// mlock. This keeps the build cgo-free: no libpthread call and no C
// compiler required to cross-compile the module.

package affinity

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// setAffinityPlatform binds the calling goroutine's OS thread to cpuID.
func setAffinityPlatform(cpuID int) error {
	runtime.LockOSThread()

	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)

	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: sched_setaffinity(cpu=%d): %w", cpuID, err)
	}
	return nil
}
