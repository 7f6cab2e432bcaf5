package hashtable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertFindErase(t *testing.T) {
	h := New[int]()
	assert.Equal(t, 0, h.Len())

	h.Insert("one", 1)
	h.Insert("two", 2)
	h.Insert("three", 3)
	assert.Equal(t, 3, h.Len())

	v, ok := h.Find("two")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = h.Find("four")
	assert.False(t, ok)

	h.Erase("two")
	assert.Equal(t, 2, h.Len())
	_, ok = h.Find("two")
	assert.False(t, ok)

	// Erasing an absent key is a no-op.
	h.Erase("two")
	assert.Equal(t, 2, h.Len())
}

func TestInsertOverwrites(t *testing.T) {
	h := New[string]()
	h.Insert("k", "v1")
	h.Insert("k", "v2")

	assert.Equal(t, 1, h.Len())
	v, ok := h.Find("k")
	assert.True(t, ok)
	assert.Equal(t, "v2", v)
}

// Push well past the rehash threshold and verify every entry survives.
func TestRehashKeepsEntries(t *testing.T) {
	h := New[int]()
	const n = 1000
	for i := 0; i < n; i++ {
		h.Insert(fmt.Sprintf("key-%d", i), i)
	}
	assert.Equal(t, n, h.Len())
	assert.Greater(t, len(h.buckets), initialBuckets)

	for i := 0; i < n; i++ {
		v, ok := h.Find(fmt.Sprintf("key-%d", i))
		assert.True(t, ok)
		assert.Equal(t, i, v)
	}
}
