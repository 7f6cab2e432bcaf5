package cache

import (
	apperrors "cachebox/pkg/errors"
)

// entry pairs a stored value with the position of its key in the recency order.
type entry[V any] struct {
	value V
	pos   handle
}

// Cache is a bounded key-value cache with least-recently-used eviction.
// A map gives O(1) key lookup and a handle-addressed doubly linked list
// maintains recency ordering, so Get and Set run in O(1) expected time.
//
// Cache is not safe for concurrent use. Get is a mutation too (a hit reorders
// the recency list), so concurrent callers must serialize every operation.
type Cache[K comparable, V any] struct {
	capacity int
	entries  map[K]entry[V]
	order    *recencyOrder[K]
}

// New creates a cache bounded to capacity entries. Capacity must be at least
// one; there is no implicit default.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, apperrors.ErrInvalidCapacity
	}
	return &Cache[K, V]{
		capacity: capacity,
		entries:  make(map[K]entry[V], capacity),
		order:    newRecencyOrder[K](capacity),
	}, nil
}

// Get returns the value stored under key and promotes the key to most
// recently used. A miss has no side effects.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.remove(e.pos)
	e.pos = c.order.pushBack(key)
	c.entries[key] = e
	return e.value, true
}

// Set stores value under key as the most recently used entry. Setting a
// resident key overwrites its value in place. Inserting a new key at capacity
// first evicts the least recently used entry, so the bound is never exceeded.
func (c *Cache[K, V]) Set(key K, value V) {
	if e, ok := c.entries[key]; ok {
		c.order.remove(e.pos)
		c.entries[key] = entry[V]{value: value, pos: c.order.pushBack(key)}
		return
	}
	if len(c.entries) == c.capacity {
		victim := c.order.front()
		c.order.remove(c.entries[victim].pos)
		delete(c.entries, victim)
	}
	c.entries[key] = entry[V]{value: value, pos: c.order.pushBack(key)}
}

// Remove deletes key from the cache and reports whether it was resident.
func (c *Cache[K, V]) Remove(key K) bool {
	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.remove(e.pos)
	delete(c.entries, key)
	return true
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// Capacity returns the bound fixed at construction.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Keys returns resident keys from least to most recently used.
func (c *Cache[K, V]) Keys() []K {
	return c.order.keys()
}
