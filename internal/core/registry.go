// File: internal/core/registry.go
// Author: momentics <momentics@gmail.com>
//
// Two process-wide singletons live here. The Recycler Registry holds the
// global cleanup callback lists invoked by Cleanup/ForceCleanup — modeled
// on the original buffer_recycler's callback vectors, translated from a
// process-exit-time destructor sweep into an explicit, caller-invoked one
// since Go has no reliable global destructor. The typed-pool lookup
// registry is the runtime stand-in for what a C++ template instantiation
// gets for free: one shared pool per (T, A) pair, found by a hash-sharded
// directory so that creating pools for many distinct pairs concurrently
// does not serialise on a single lock, in the spirit of a bucketed
// concurrent map.

package core

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const lookupBucketCount = 64 // power of two

type lookupBucket struct {
	mu    sync.Mutex
	pools map[string]any
}

var lookupBuckets [lookupBucketCount]lookupBucket

func init() {
	for i := range lookupBuckets {
		lookupBuckets[i].pools = make(map[string]any)
	}
}

func lookupBucketFor(key string) *lookupBucket {
	h := xxhash.Sum64String(key)
	return &lookupBuckets[h&(lookupBucketCount-1)]
}

// lookupOrCreate returns the pool stored under key, creating it via
// create if absent. The first caller to observe a miss wins; all others
// see the winner's value.
func lookupOrCreate(key string, create func() any) any {
	b := lookupBucketFor(key)
	b.mu.Lock()
	defer b.mu.Unlock()
	if v, ok := b.pools[key]; ok {
		return v
	}
	v := create()
	b.pools[key] = v
	return v
}

// registry is the Recycler Registry: the process-wide lists of cleanup
// callbacks invoked by Cleanup (partial) and ForceCleanup (full).
type registry struct {
	mu      sync.Mutex
	partial []func()
	full    []func()
}

var globalRegistry registry

// RegisterCleanup records a typed pool's partial (free-list-only) and
// full (destroy-everything) cleanup callbacks. Called exactly once per
// typed pool, guarded by that pool's own sync.Once.
func RegisterCleanup(partial, full func()) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.partial = append(globalRegistry.partial, partial)
	globalRegistry.full = append(globalRegistry.full, full)
}

// Cleanup invokes every registered partial callback, freeing each typed
// pool's unused buffers while leaving in-use buffers untouched.
func Cleanup() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	for _, cb := range globalRegistry.partial {
		cb()
	}
}

// ForceCleanup invokes every registered full callback, destroying every
// buffer every typed pool owns, in-use or not.
func ForceCleanup() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	for _, cb := range globalRegistry.full {
		cb()
	}
}
