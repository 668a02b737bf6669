// File: alloc/facade_test.go
// Author: momentics <momentics@gmail.com>

package alloc

import "testing"

func TestStandardFacadeDestroysStateOnReuse(t *testing.T) {
	var a Std[int]
	buf, err := a.Allocate(4)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	buf[0] = 99
	a.Destroy(buf)
	if err := a.Deallocate(buf, 4); err != nil {
		t.Fatalf("Deallocate: %v", err)
	}
	buf2, err := a.Allocate(4)
	if err != nil {
		t.Fatalf("Allocate (reuse): %v", err)
	}
	if buf2[0] != 0 {
		t.Fatalf("expected standard flavour to reset element state, got %d", buf2[0])
	}
}

func TestAggressiveFacadePreservesStateOnReuse(t *testing.T) {
	var a AggressiveStd[int]
	buf, err := a.Allocate(4)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	buf[0] = 99
	if err := a.Deallocate(buf, 4); err != nil {
		t.Fatalf("Deallocate: %v", err)
	}
	buf2, err := a.Allocate(4)
	if err != nil {
		t.Fatalf("Allocate (reuse): %v", err)
	}
	if buf2[0] != 99 {
		t.Fatalf("expected aggressive flavour to preserve element state, got %d", buf2[0])
	}
}

func TestFacadeEqual(t *testing.T) {
	var a, b Std[int]
	if !a.Equal(b) {
		t.Fatalf("expected two Std[int] instances to compare equal")
	}
	var c AggressiveStd[int]
	if a.Equal(c) {
		t.Fatalf("expected a standard and aggressive facade not to compare equal")
	}
}
