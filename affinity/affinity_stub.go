//go:build !linux && !windows
// +build !linux,!windows

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Neither sched_setaffinity nor SetThreadAffinityMask has an equivalent
// on platforms outside Linux and Windows, so pinning here always fails;
// callers that set pinCPUs on such a platform just get the error back
// from affinity.SetAffinity and run unpinned.

package affinity

import "fmt"

func setAffinityPlatform(cpuID int) error {
	return fmt.Errorf("affinity: cpu pinning not supported on this platform (requested cpu=%d)", cpuID)
}
