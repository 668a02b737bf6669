// File: config/debug_test.go
// Author: momentics <momentics@gmail.com>

package config

import (
	"testing"

	"github.com/momentics/buffer-recycler/api"
)

func statsWithAllocations(n uint64) api.PoolStats {
	return api.PoolStats{Shards: []api.ShardStats{{Allocations: n}}}
}

func TestProbesRegisterAndDumpState(t *testing.T) {
	p := NewProbes()
	p.Register("alpha", func() api.PoolStats { return statsWithAllocations(1) })
	p.Register("beta", func() api.PoolStats { return statsWithAllocations(2) })

	state := p.DumpState()
	if got := state["alpha"].Totals().Allocations; got != 1 {
		t.Fatalf("expected alpha allocations=1, got %d", got)
	}
	if got := state["beta"].Totals().Allocations; got != 2 {
		t.Fatalf("expected beta allocations=2, got %d", got)
	}
}

func TestProbesRegisterReplacesExisting(t *testing.T) {
	p := NewProbes()
	p.Register("name", func() api.PoolStats { return statsWithAllocations(1) })
	p.Register("name", func() api.PoolStats { return statsWithAllocations(2) })

	state := p.DumpState()
	if len(state) != 1 || state["name"].Totals().Allocations != 2 {
		t.Fatalf("expected a single replaced entry with allocations=2, got %+v", state)
	}
}
