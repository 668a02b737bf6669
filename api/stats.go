// File: api/stats.go
// Author: momentics <momentics@gmail.com>
//
// PoolStats aggregates the per-shard counters of a typed pool for
// presentation by the diagnostics package or a caller's own monitoring.

package api

// ShardStats holds the counters maintained by a single pool shard.
type ShardStats struct {
	Shard         int
	Allocations   uint64
	Deallocations uint64
	RecycleHits   uint64
	Creations     uint64
	BadAllocs     uint64
	WrongHints    uint64
	FreeListLen   int
	InUseLen      int
}

// PoolStats aggregates counters across every shard of one typed pool.
type PoolStats struct {
	Shards []ShardStats
}

// Totals sums every shard's counters into a single ShardStats with Shard
// set to -1, for callers that only want the aggregate.
func (s PoolStats) Totals() ShardStats {
	total := ShardStats{Shard: -1}
	for _, sh := range s.Shards {
		total.Allocations += sh.Allocations
		total.Deallocations += sh.Deallocations
		total.RecycleHits += sh.RecycleHits
		total.Creations += sh.Creations
		total.BadAllocs += sh.BadAllocs
		total.WrongHints += sh.WrongHints
		total.FreeListLen += sh.FreeListLen
		total.InUseLen += sh.InUseLen
	}
	return total
}

// RecycleRate returns the fraction of allocations satisfied by reuse
// rather than a fresh backing-allocator call, in [0, 1]. Returns 0 when
// there have been no allocations yet.
func (t ShardStats) RecycleRate() float64 {
	if t.Allocations == 0 {
		return 0
	}
	return float64(t.RecycleHits) / float64(t.Allocations)
}
