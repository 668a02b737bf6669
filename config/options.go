// File: config/options.go
// Author: momentics <momentics@gmail.com>
//
// Process-wide options. A typed pool reads ShardCount exactly once, when
// it is created, so changes to it only affect (T, A) pairs that have not
// been used yet. EnableCounters is read on every Stats call, so toggling
// it takes effect for existing pools immediately.

package config

import "sync/atomic"

const defaultShardCount = 128

var (
	shardCount     atomic.Int64
	enableCounters atomic.Bool
)

func init() {
	shardCount.Store(defaultShardCount)
	enableCounters.Store(true)
}

// SetShardCount overrides the number of shards a newly created typed pool
// will use. Must be called before the first Get/MarkUnused for any (T, A)
// pair to take effect for it; has no effect on pools already constructed.
func SetShardCount(n int) {
	if n <= 0 {
		n = defaultShardCount
	}
	shardCount.Store(int64(n))
}

// ShardCount returns the shard count new typed pools will be created with.
func ShardCount() int {
	return int(shardCount.Load())
}

// SetEnableCounters toggles whether Stats/diagnostics present the counters
// maintained by each shard. Counters are always collected regardless —
// this flag only gates presentation.
func SetEnableCounters(enabled bool) {
	enableCounters.Store(enabled)
}

// EnableCounters reports whether counter presentation is currently on.
func EnableCounters() bool {
	return enableCounters.Load()
}
