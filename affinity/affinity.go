// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity, used by the async executor to
// pin worker goroutines to specific cores. Platform-specific
// implementations live in separate files (affinity_linux.go,
// affinity_windows.go, affinity_stub.go) guarded by build tags, each
// going through golang.org/x/sys rather than a bare syscall or cgo call.

package affinity

// SetAffinity pins current OS thread to a given logical CPU/core on supported platforms.
// On unsupported platforms returns an error.
func SetAffinity(cpuID int) error {
	return setAffinityPlatform(cpuID)
}
