// File: internal/core/typedpool.go
// Author: momentics <momentics@gmail.com>
//
// typedPool owns the N shards backing one (T, A) pair. It is created
// lazily, exactly once, by GetPool, and lives for the process lifetime
// (Clean replaces its shards but not the pool itself).

package core

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/buffer-recycler/api"
	"github.com/momentics/buffer-recycler/config"
)

type typedPool[T any, A api.BackingAllocator[T]] struct {
	key      string
	shards   []atomic.Pointer[shard[T, A]]
	alloc    A
	initOnce sync.Once
}

func newTypedPool[T any, A api.BackingAllocator[T]](key string) *typedPool[T, A] {
	n := config.ShardCount()
	p := &typedPool[T, A]{key: key, shards: make([]atomic.Pointer[shard[T, A]], n)}
	for i := range p.shards {
		p.shards[i].Store(newShard[T, A]())
	}
	return p
}

// GetPool returns the shared typed pool for (T, A), creating it on first
// use. Multiple goroutines racing on the same (T, A) pair for the first
// time all observe the single winner's instance.
func GetPool[T any, A api.BackingAllocator[T]]() *typedPool[T, A] {
	key := typeKeyFor[T, A]()
	v := lookupOrCreate(key, func() any { return newTypedPool[T, A](key) })
	return v.(*typedPool[T, A])
}

// ensureRegistered runs once per typed pool: it joins the Recycler
// Registry's cleanup lists and registers a debug probe under the pool's
// type-key string, so config.DefaultProbes.DumpState() surfaces this
// pool's Stats() snapshot by name.
func (p *typedPool[T, A]) ensureRegistered() {
	p.initOnce.Do(func() {
		RegisterCleanup(p.CleanUnusedOnly, p.destroyAll)
		config.DefaultProbes.Register(p.key, p.Stats)
	})
}

func (p *typedPool[T, A]) shardAt(i int) *shard[T, A] {
	return p.shards[i].Load()
}

func (p *typedPool[T, A]) n() int {
	return len(p.shards)
}

func validHint(hint, n int) error {
	if hint != -1 && (hint < 0 || hint >= n) {
		return api.ErrInvalidHint.WithContext("hint", hint).WithContext("shards", n)
	}
	return nil
}

// Get satisfies a request for count elements, optionally from the free
// list of shard hint (or shard 0 if hint is -1), falling back to a fresh
// allocation and, on out-of-memory, one global-cleanup-and-retry cycle.
func (p *typedPool[T, A]) Get(count int, aggressive bool, hint int) ([]T, error) {
	p.ensureRegistered()
	if err := validHint(hint, p.n()); err != nil {
		return nil, err
	}
	i := hint
	if i < 0 {
		i = 0
	}
	s := p.shardAt(i)

	s.mu.Lock()
	buf, err := s.get(p.alloc, count, aggressive)
	if err == nil {
		s.mu.Unlock()
		return buf, nil
	}
	s.mu.Unlock()

	if !isOutOfMemory(err) {
		return nil, err
	}

	Cleanup()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(p.alloc, count, aggressive)
}

func isOutOfMemory(err error) bool {
	e, ok := err.(*api.Error)
	return ok && e.Code == api.ErrCodeOutOfMemory
}

// MarkUnused returns buf to the pool. hint, if not -1, is tried first;
// any other shard is searched in order on a miss or a wrong hint.
func (p *typedPool[T, A]) MarkUnused(buf []T, count int, hint int) error {
	p.ensureRegistered()
	n := p.n()
	if err := validHint(hint, n); err != nil {
		return err
	}

	if hint >= 0 {
		s := p.shardAt(hint)
		s.mu.Lock()
		found, err := s.tryMarkUnused(buf, count)
		s.mu.Unlock()
		if found {
			return err
		}
		s.counts.wrongHints.Add(1)
	}

	for i := 0; i < n; i++ {
		if i == hint {
			continue
		}
		s := p.shardAt(i)
		s.mu.Lock()
		found, err := s.tryMarkUnused(buf, count)
		s.mu.Unlock()
		if found {
			return err
		}
	}
	return api.ErrUnknownBuffer
}

// CleanUnusedOnly frees every shard's free list, leaving in-use buffers
// untouched. This is the registry's partial cleanup callback.
func (p *typedPool[T, A]) CleanUnusedOnly() {
	for i := range p.shards {
		s := p.shardAt(i)
		s.mu.Lock()
		s.cleanFree(p.alloc)
		s.mu.Unlock()
	}
}

func (p *typedPool[T, A]) destroyAll() {
	for i := range p.shards {
		s := p.shardAt(i)
		s.mu.Lock()
		s.cleanAll(p.alloc)
		s.mu.Unlock()
	}
}

// Clean destroys every buffer the pool owns, in-use or not, and replaces
// each shard with an empty one. Buffers still held by callers become
// dangling; callers must ensure quiescence before calling this.
func (p *typedPool[T, A]) Clean() {
	for i := range p.shards {
		old := p.shards[i].Load()
		old.mu.Lock()
		old.cleanAll(p.alloc)
		old.mu.Unlock()
		p.shards[i].Store(newShard[T, A]())
	}
}

// Stats returns a snapshot of every shard's counters, or a zeroed snapshot
// without touching the atomics when config.EnableCounters is off.
func (p *typedPool[T, A]) Stats() api.PoolStats {
	out := api.PoolStats{Shards: make([]api.ShardStats, p.n())}
	if !config.EnableCounters() {
		for i := range out.Shards {
			out.Shards[i].Shard = i
		}
		return out
	}
	for i := range p.shards {
		s := p.shardAt(i)
		s.mu.Lock()
		freeLen, inUseLen := len(s.free), len(s.inUse)
		s.mu.Unlock()
		out.Shards[i] = api.ShardStats{
			Shard:         i,
			Allocations:   s.counts.allocations.Load(),
			Deallocations: s.counts.deallocations.Load(),
			RecycleHits:   s.counts.recycleHits.Load(),
			Creations:     s.counts.creations.Load(),
			BadAllocs:     s.counts.badAllocs.Load(),
			WrongHints:    s.counts.wrongHints.Load(),
			FreeListLen:   freeLen,
			InUseLen:      inUseLen,
		}
	}
	return out
}
