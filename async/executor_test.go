// File: async/executor_test.go
// Author: momentics <momentics@gmail.com>

package async

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestExecutorRunsSubmittedTasks(t *testing.T) {
	exec := NewExecutor(2, false)
	defer exec.Close()

	var n atomic.Int64
	for i := 0; i < 100; i++ {
		if err := exec.Submit(func() { n.Add(1) }); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	deadline := time.Now().Add(time.Second)
	for n.Load() < 100 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if got := n.Load(); got != 100 {
		t.Fatalf("expected 100 tasks to run, got %d", got)
	}
}

func TestExecutorRejectsAfterClose(t *testing.T) {
	exec := NewExecutor(1, false)
	exec.Close()
	if err := exec.Submit(func() {}); err != ErrExecutorClosed {
		t.Fatalf("expected ErrExecutorClosed after Close, got %v", err)
	}
}

func TestAsyncGetReturnsBuffer(t *testing.T) {
	exec := NewExecutor(1, false)
	defer exec.Close()

	ch, err := AsyncGet[int, testAlloc](exec, 4, false, -1)
	if err != nil {
		t.Fatalf("AsyncGet: %v", err)
	}
	select {
	case res := <-ch:
		if res.Err != nil {
			t.Fatalf("Get via executor: %v", res.Err)
		}
		if len(res.Buf) != 4 {
			t.Fatalf("expected 4 elements, got %d", len(res.Buf))
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for async Get result")
	}
}

type testAlloc struct{}

func (testAlloc) Allocate(n int) ([]int, error) { return make([]int, n), nil }
func (testAlloc) Deallocate(buf []int)          {}
