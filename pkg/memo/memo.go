// Package memo provides a generic thread-safe cache with epoch
// invalidation. Bump invalidates every entry in O(1); stale entries are
// dropped lazily on read.
package memo

import "sync"

type entry[V any] struct {
	value V
	epoch uint64
}

// Cache is a thread-safe generic cache. Entries written before the last
// Bump read as missing.
type Cache[K comparable, V any] struct {
	mu    sync.RWMutex
	data  map[K]entry[V]
	epoch uint64
}

// New creates an empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		data: make(map[K]entry[V]),
	}
}

// Get retrieves a value by key. Entries from a previous epoch miss.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.data[key]
	if !ok || e.epoch != c.epoch {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores a value by key in the current epoch.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = entry[V]{value: value, epoch: c.epoch}
}

// GetOrCompute returns the cached value, computing and storing it on a
// miss.
func (c *Cache[K, V]) GetOrCompute(key K, compute func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := compute()
	c.Set(key, v)
	return v
}

// Delete removes a key from the cache.
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}

// Bump invalidates every entry without touching the map. When the map has
// grown past pruneThreshold stale entries it is rebuilt empty.
func (c *Cache[K, V]) Bump() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	if len(c.data) > pruneThreshold {
		c.data = make(map[K]entry[V])
	}
}

const pruneThreshold = 4096

// Len returns the number of live entries in the current epoch.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, e := range c.data {
		if e.epoch == c.epoch {
			n++
		}
	}
	return n
}
