// File: internal/core/shard.go
// Author: momentics <momentics@gmail.com>
//
// One shard owns a slice of a typed pool's buffers: the entries currently
// handed out (in_use, keyed by the underlying data pointer for O(1)
// lookup) and the entries available for reuse (free, a LIFO list matched
// by exact element count). All access is serialised by mu; counters use
// atomics so Stats can read them without taking mu.

package core

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/momentics/buffer-recycler/api"
)

type shardCounters struct {
	allocations   atomic.Uint64
	deallocations atomic.Uint64
	recycleHits   atomic.Uint64
	creations     atomic.Uint64
	badAllocs     atomic.Uint64
	wrongHints    atomic.Uint64
}

type shard[T any, A api.BackingAllocator[T]] struct {
	mu     sync.Mutex
	inUse  map[unsafe.Pointer]*entry[T]
	free   []*entry[T]
	counts shardCounters
}

func newShard[T any, A api.BackingAllocator[T]]() *shard[T, A] {
	return &shard[T, A]{inUse: make(map[unsafe.Pointer]*entry[T])}
}

func dataPointer[T any](buf []T) unsafe.Pointer {
	if len(buf) == 0 {
		return nil
	}
	return unsafe.Pointer(&buf[0])
}

// get must be called with mu held. It satisfies the request from the
// free list on a count match, else allocates fresh via alloc, reconciling
// element state with aggressive either way.
func (s *shard[T, A]) get(alloc A, count int, aggressive bool) ([]T, error) {
	for i, e := range s.free {
		if e.count != count {
			continue
		}
		s.free = append(s.free[:i], s.free[i+1:]...)
		reconcile(e, aggressive)
		s.inUse[dataPointer(e.data)] = e
		s.counts.allocations.Add(1)
		s.counts.recycleHits.Add(1)
		return e.data, nil
	}

	buf, err := alloc.Allocate(count)
	if err != nil {
		s.counts.badAllocs.Add(1)
		return nil, err
	}
	if aggressive {
		clear(buf)
	}
	e := &entry[T]{data: buf, count: count, constructed: aggressive}
	s.inUse[dataPointer(buf)] = e
	s.counts.allocations.Add(1)
	s.counts.creations.Add(1)
	return buf, nil
}

// tryMarkUnused must be called with mu held. Reports whether buf was
// found in this shard's in_use set.
func (s *shard[T, A]) tryMarkUnused(buf []T, count int) (found bool, err error) {
	key := dataPointer(buf)
	e, ok := s.inUse[key]
	if !ok {
		return false, nil
	}
	if e.count != count {
		return true, api.ErrSizeMismatch.WithContext("want", e.count).WithContext("got", count)
	}
	delete(s.inUse, key)
	s.free = append([]*entry[T]{e}, s.free...)
	s.counts.deallocations.Add(1)
	return true, nil
}

// cleanFree must be called with mu held. Deallocates every free entry and
// empties the free list; in_use is untouched.
func (s *shard[T, A]) cleanFree(alloc A) {
	for _, e := range s.free {
		alloc.Deallocate(e.data)
	}
	s.free = nil
}

// cleanAll must be called with mu held. Deallocates every entry, free or
// in-use, and resets the shard to empty.
func (s *shard[T, A]) cleanAll(alloc A) {
	for _, e := range s.free {
		alloc.Deallocate(e.data)
	}
	for _, e := range s.inUse {
		alloc.Deallocate(e.data)
	}
	s.free = nil
	s.inUse = make(map[unsafe.Pointer]*entry[T])
}

func reconcile[T any](e *entry[T], aggressive bool) {
	if e.constructed != aggressive {
		clear(e.data)
	}
	e.constructed = aggressive
}
