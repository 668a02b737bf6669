// File: config/options_test.go
// Author: momentics <momentics@gmail.com>

package config

import "testing"

func TestSetShardCountOverridesDefault(t *testing.T) {
	defer SetShardCount(defaultShardCount)

	SetShardCount(16)
	if got := ShardCount(); got != 16 {
		t.Fatalf("expected ShardCount=16, got %d", got)
	}

	SetShardCount(0)
	if got := ShardCount(); got != defaultShardCount {
		t.Fatalf("expected non-positive override to fall back to %d, got %d", defaultShardCount, got)
	}
}

func TestSetEnableCounters(t *testing.T) {
	defer SetEnableCounters(true)

	SetEnableCounters(false)
	if EnableCounters() {
		t.Fatal("expected EnableCounters to report false after SetEnableCounters(false)")
	}

	SetEnableCounters(true)
	if !EnableCounters() {
		t.Fatal("expected EnableCounters to report true after SetEnableCounters(true)")
	}
}
