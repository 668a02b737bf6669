// File: diagnostics/report_test.go
// Author: momentics <momentics@gmail.com>

package diagnostics

import (
	"strings"
	"testing"

	"github.com/momentics/buffer-recycler/api"
	"github.com/momentics/buffer-recycler/config"
)

func TestReportIncludesTotals(t *testing.T) {
	stats := api.PoolStats{Shards: []api.ShardStats{
		{Shard: 0, Allocations: 3, RecycleHits: 1, Deallocations: 2},
		{Shard: 1},
	}}
	out := Report("example", stats)
	if !strings.Contains(out, "3 allocations") {
		t.Fatalf("expected totals in report, got %q", out)
	}
	if strings.Contains(out, "shard 1:") {
		t.Fatalf("expected idle shard 1 to be omitted, got %q", out)
	}
}

func TestReportHonorsCounterToggle(t *testing.T) {
	config.SetEnableCounters(false)
	defer config.SetEnableCounters(true)

	out := Report("example", api.PoolStats{})
	if !strings.Contains(out, "counters disabled") {
		t.Fatalf("expected disabled notice, got %q", out)
	}
}
