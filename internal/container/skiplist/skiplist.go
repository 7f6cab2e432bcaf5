// Package skiplist implements an ordered string-keyed map.
package skiplist

import "math/rand"

const (
	maxLevel = 16
	p        = 0.25
)

type node[V any] struct {
	key   string
	value V
	next  []*node[V]
}

// SkipList is a probabilistic ordered map. Expected Put/Get/Delete time is
// O(log n). It is not safe for concurrent use.
type SkipList[V any] struct {
	head  *node[V]
	level int
	size  int
}

func New[V any]() *SkipList[V] {
	return &SkipList[V]{
		head:  &node[V]{next: make([]*node[V], 1)},
		level: 1,
	}
}

// Put inserts value under key, overwriting any existing value.
func (s *SkipList[V]) Put(key string, value V) {
	if n := s.search(key); n != nil {
		n.value = value
		return
	}

	newLevel := randomLevel()
	for s.level < newLevel {
		s.head.next = append(s.head.next, nil)
		s.level++
	}

	newNode := &node[V]{
		key:   key,
		value: value,
		next:  make([]*node[V], newLevel),
	}

	// Splice in from the top level down.
	cur := s.head
	for i := s.level - 1; i >= 0; i-- {
		for cur.next[i] != nil && cur.next[i].key < key {
			cur = cur.next[i]
		}
		if i < newLevel {
			newNode.next[i] = cur.next[i]
			cur.next[i] = newNode
		}
	}
	s.size++
}

// Get returns the value stored under key.
func (s *SkipList[V]) Get(key string) (V, bool) {
	if n := s.search(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Delete removes key and reports whether it was present.
func (s *SkipList[V]) Delete(key string) bool {
	found := false
	cur := s.head
	for i := s.level - 1; i >= 0; i-- {
		for cur.next[i] != nil && cur.next[i].key < key {
			cur = cur.next[i]
		}
		if cur.next[i] != nil && cur.next[i].key == key {
			cur.next[i] = cur.next[i].next[i]
			found = true
		}
	}
	if found {
		s.size--
	}
	return found
}

// Len returns the number of entries.
func (s *SkipList[V]) Len() int {
	return s.size
}

// Keys returns all keys in ascending order.
func (s *SkipList[V]) Keys() []string {
	out := make([]string, 0, s.size)
	for n := s.head.next[0]; n != nil; n = n.next[0] {
		out = append(out, n.key)
	}
	return out
}

func (s *SkipList[V]) search(key string) *node[V] {
	cur := s.head
	for i := s.level - 1; i >= 0; i-- {
		for cur.next[i] != nil && cur.next[i].key < key {
			cur = cur.next[i]
		}
		if cur.next[i] != nil && cur.next[i].key == key {
			return cur.next[i]
		}
	}
	return nil
}

func randomLevel() int {
	level := 1
	for level < maxLevel && rand.Float64() < p {
		level++
	}
	return level
}
