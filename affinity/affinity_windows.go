//go:build windows
// +build windows

// File: affinity/affinity_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows thread affinity via SetThreadAffinityMask, resolved through
// golang.org/x/sys/windows's lazy-DLL helpers (the same mechanism the
// backing allocators use for VirtualAlloc/VirtualLock) rather than the
// bare syscall package.

package affinity

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/windows"
)

var (
	modKernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadAffinityMask = modKernel32.NewProc("SetThreadAffinityMask")
)

// setAffinityPlatform binds the calling goroutine's OS thread to cpuID.
func setAffinityPlatform(cpuID int) error {
	runtime.LockOSThread()

	mask := uintptr(1) << uint(cpuID)
	old, _, err := procSetThreadAffinityMask.Call(uintptr(windows.CurrentThread()), mask)
	if old == 0 {
		return fmt.Errorf("affinity: SetThreadAffinityMask(cpu=%d): %w", cpuID, err)
	}
	return nil
}
