// File: diagnostics/report.go
// Author: momentics <momentics@gmail.com>

package diagnostics

import (
	"fmt"
	"strings"

	"github.com/momentics/buffer-recycler/api"
	"github.com/momentics/buffer-recycler/config"
)

// Report renders stats as a multi-line summary: one totals line followed
// by one line per shard that has seen any activity. When counter
// presentation is disabled via config.SetEnableCounters(false), Report
// returns a one-line notice instead of walking the (possibly large)
// per-shard slice.
func Report(name string, stats api.PoolStats) string {
	if !config.EnableCounters() {
		return fmt.Sprintf("%s: counters disabled\n", name)
	}

	var b strings.Builder
	total := stats.Totals()
	fmt.Fprintf(&b, "%s: %d shards, %d allocations (%d recycled, %.1f%% hit rate), %d deallocations, %d bad-allocs, %d wrong hints\n",
		name, len(stats.Shards), total.Allocations, total.RecycleHits, total.RecycleRate()*100, total.Deallocations, total.BadAllocs, total.WrongHints)

	for _, s := range stats.Shards {
		if s.Allocations == 0 && s.Deallocations == 0 {
			continue
		}
		fmt.Fprintf(&b, "  shard %d: %d in-use, %d free, %d allocations (%d recycled), %d deallocations\n",
			s.Shard, s.InUseLen, s.FreeListLen, s.Allocations, s.RecycleHits, s.Deallocations)
	}
	return b.String()
}
