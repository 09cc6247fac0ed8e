// Package cache provides a generic, thread-safe LRU cache.
//
// The registry uses it to keep decoded schemas in memory so that repeated
// validations against the same schema name do not hit the backing store.
//
//	c := cache.NewLRU[string, *record.Schema](128)
//	c.Put("usuario", schema)
//	s, ok := c.Get("usuario")
//
// When the cache is full, Put evicts the least recently used entry. An
// optional eviction callback observes evictions (not explicit removals).
// Stats reports hit, miss and eviction counters.
//
// All operations are O(1) and safe for concurrent use.
package cache
