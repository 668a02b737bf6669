// File: backing/system_test.go
// Author: momentics <momentics@gmail.com>

package backing

import "testing"

func TestSystemAllocatorRoundTrip(t *testing.T) {
	var a SystemAllocator[int]
	buf, err := a.Allocate(8)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if len(buf) != 8 {
		t.Fatalf("expected 8 elements, got %d", len(buf))
	}
	a.Deallocate(buf)
}
