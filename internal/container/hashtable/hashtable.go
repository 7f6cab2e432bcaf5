// Package hashtable implements a separate-chaining hashtable with rehashing.
package hashtable

import "github.com/twmb/murmur3"

const (
	initialBuckets = 8
	// alpha is the load factor that triggers a doubling rehash.
	alpha = 0.75
)

type chainEntry[V any] struct {
	key   string
	value V
}

// Hashtable supports constant expected time insert, retrieval and delete.
// Keys are hashed with murmur3; colliding keys chain inside a bucket slice.
type Hashtable[V any] struct {
	buckets [][]chainEntry[V]
	nelems  int
}

func New[V any]() *Hashtable[V] {
	return &Hashtable[V]{
		buckets: make([][]chainEntry[V], initialBuckets),
	}
}

func bucketIndex(key string, nbuckets int) int {
	return int(murmur3.Sum32([]byte(key)) % uint32(nbuckets))
}

// Insert adds key with value, overwriting the value if key already exists.
func (h *Hashtable[V]) Insert(key string, value V) {
	b := bucketIndex(key, len(h.buckets))
	for i := range h.buckets[b] {
		if h.buckets[b][i].key == key {
			h.buckets[b][i].value = value
			return
		}
	}
	h.buckets[b] = append(h.buckets[b], chainEntry[V]{key: key, value: value})
	h.nelems++
	if float64(h.nelems)/float64(len(h.buckets)) >= alpha {
		h.rehash(len(h.buckets) * 2)
	}
}

// Find returns the value associated with key.
func (h *Hashtable[V]) Find(key string) (V, bool) {
	b := bucketIndex(key, len(h.buckets))
	for i := range h.buckets[b] {
		if h.buckets[b][i].key == key {
			return h.buckets[b][i].value, true
		}
	}
	var zero V
	return zero, false
}

// Erase removes the entry with key, if present.
func (h *Hashtable[V]) Erase(key string) {
	b := bucketIndex(key, len(h.buckets))
	chain := h.buckets[b]
	for i := range chain {
		if chain[i].key == key {
			h.buckets[b] = append(chain[:i], chain[i+1:]...)
			h.nelems--
			return
		}
	}
}

// Len returns the number of entries in the hashtable.
func (h *Hashtable[V]) Len() int {
	return h.nelems
}

func (h *Hashtable[V]) rehash(nbuckets int) {
	old := h.buckets
	h.buckets = make([][]chainEntry[V], nbuckets)
	for _, chain := range old {
		for _, e := range chain {
			b := bucketIndex(e.key, nbuckets)
			h.buckets[b] = append(h.buckets[b], e)
		}
	}
}
