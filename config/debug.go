// File: config/debug.go
// Author: momentics <momentics@gmail.com>
//
// Runtime debug-probe registry for internal inspection: any typed pool can
// register a named hook producing its own api.PoolStats snapshot, and a
// caller can dump every registered probe by name without the registry
// needing any further knowledge of what produced each snapshot.

package config

import (
	"sync"

	"github.com/momentics/buffer-recycler/api"
)

// Probes holds registered debug hooks, each yielding an api.PoolStats
// snapshot. The signature is typed rather than any so DumpState's callers
// never need a type assertion to use what comes back.
type Probes struct {
	mu     sync.RWMutex
	probes map[string]func() api.PoolStats
}

// DefaultProbes is the process-wide probe registry. Typed pools register
// one probe per (T, A) pair here under their type-key string.
var DefaultProbes = NewProbes()

// NewProbes creates an empty probe registry.
func NewProbes() *Probes {
	return &Probes{probes: make(map[string]func() api.PoolStats)}
}

// Register inserts or replaces the named probe.
func (p *Probes) Register(name string, fn func() api.PoolStats) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.probes[name] = fn
}

// DumpState evaluates every registered probe and returns the results keyed
// by name.
func (p *Probes) DumpState() map[string]api.PoolStats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]api.PoolStats, len(p.probes))
	for k, fn := range p.probes {
		out[k] = fn()
	}
	return out
}
