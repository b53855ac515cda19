// Package cache provides the sharded memo table used to keep resolved
// conversion paths for the lifetime of a registry.
//
// Unlike an LRU cache, a Memo never evicts: every value is computed at most
// once per key and then served from memory. The key space is bounded by the
// number of (source, target) pairs in a conversion graph, so growth is not a
// concern.
//
//	m := cache.NewMemo[string, int](cache.StringHasher, 0)
//	v := m.GetOrCreate("key", func() int { return 42 })
//
// # Thread Safety
//
// Memo is safe for concurrent use and must not be copied after creation.
package cache
