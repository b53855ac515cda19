package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

// ShardCount is the number of shards in a Memo.
// Must be a power of 2 for fast modulo via bitwise AND.
const ShardCount = 16

const shardMask = ShardCount - 1

// Hasher computes the hash used for shard selection.
type Hasher[K any] func(K) uint64

// StringHasher computes FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// Memo is a thread-safe, sharded memo table.
//
// Values are created on first request by GetOrCreate and kept until the
// Memo is discarded.
type Memo[K comparable, V any] struct {
	shards [ShardCount]*memoShard[K, V]
	hasher Hasher[K]

	hits   atomic.Uint64
	misses atomic.Uint64
}

type memoShard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// Stats reports memo usage.
type Stats struct {
	Len     int
	Hits    uint64
	Misses  uint64
	HitRate float64
}

// NewMemo creates an empty memo table. capacityHint presizes each shard
// and may be zero.
func NewMemo[K comparable, V any](hasher Hasher[K], capacityHint int) *Memo[K, V] {
	if capacityHint < 0 {
		capacityHint = 0
	}
	m := &Memo[K, V]{hasher: hasher}
	for i := range m.shards {
		m.shards[i] = &memoShard[K, V]{
			entries: make(map[K]V, capacityHint),
		}
	}
	return m
}

func (m *Memo[K, V]) shard(key K) *memoShard[K, V] {
	return m.shards[m.hasher(key)&shardMask]
}

// Get returns the memoised value for key, if any.
func (m *Memo[K, V]) Get(key K) (V, bool) {
	s := m.shard(key)
	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		m.hits.Add(1)
	} else {
		m.misses.Add(1)
	}
	return v, ok
}

// GetOrCreate returns the memoised value for key or creates it.
//
// The create function runs with the shard lock held, so concurrent callers
// asking for the same key wait for a single computation. Keep it fast.
func (m *Memo[K, V]) GetOrCreate(key K, create func() V) V {
	s := m.shard(key)

	// Fast path: read lock only
	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		m.hits.Add(1)
		return v
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check after acquiring write lock
	if v, ok := s.entries[key]; ok {
		m.hits.Add(1)
		return v
	}

	m.misses.Add(1)
	v = create()
	s.entries[key] = v
	return v
}

// Len returns the total number of entries across all shards.
func (m *Memo[K, V]) Len() int {
	total := 0
	for _, s := range m.shards {
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

// ShardLen returns the number of entries in each shard.
// Useful for debugging load distribution.
func (m *Memo[K, V]) ShardLen() [ShardCount]int {
	var lens [ShardCount]int
	for i, s := range m.shards {
		s.mu.RLock()
		lens[i] = len(s.entries)
		s.mu.RUnlock()
	}
	return lens
}

// Stats returns current memo statistics.
func (m *Memo[K, V]) Stats() Stats {
	hits := m.hits.Load()
	misses := m.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	return Stats{
		Len:     m.Len(),
		Hits:    hits,
		Misses:  misses,
		HitRate: hitRate,
	}
}
