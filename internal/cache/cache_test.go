package cache

import (
	"testing"

	apperrors "cachebox/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestCache_InvalidCapacity(t *testing.T) {
	_, err := New[string, string](0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCapacity)

	_, err = New[string, string](-1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCapacity)

	c, err := New[string, string](1)
	assert.NoError(t, err)
	assert.Equal(t, 1, c.Capacity())
	assert.Equal(t, 0, c.Len())
}

func TestCache_Basic(t *testing.T) {
	c, err := New[string, []string](2)
	assert.NoError(t, err)

	c.Set("key1", []string{"doc1", "doc2"})
	value, ok := c.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, []string{"doc1", "doc2"}, value)

	// Miss returns the zero value and leaves state untouched.
	before := c.Keys()
	_, ok = c.Get("non-existent")
	assert.False(t, ok)
	assert.Equal(t, before, c.Keys())
}

func TestCache_UpdateExisting(t *testing.T) {
	c, err := New[string, string](2)
	assert.NoError(t, err)

	c.Set("key1", "value1")
	c.Set("key1", "newvalue1")

	value, ok := c.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, "newvalue1", value)
	assert.Equal(t, 1, c.Len())
}

func TestCache_EvictsLeastRecent(t *testing.T) {
	c, err := New[string, string](2)
	assert.NoError(t, err)

	c.Set("key1", "value1")
	c.Set("key2", "value2")
	c.Set("key3", "value3")

	_, ok := c.Get("key1")
	assert.False(t, ok)

	value, ok := c.Get("key2")
	assert.True(t, ok)
	assert.Equal(t, "value2", value)

	value, ok = c.Get("key3")
	assert.True(t, ok)
	assert.Equal(t, "value3", value)
	assert.Equal(t, 2, c.Len())
}

func TestCache_GetPromotes(t *testing.T) {
	c, err := New[string, string](2)
	assert.NoError(t, err)

	c.Set("key1", "value1")
	c.Set("key2", "value2")

	// key1 becomes most recently used, so key2 is the next victim.
	c.Get("key1")
	c.Set("key3", "value3")

	_, ok := c.Get("key2")
	assert.False(t, ok)
	_, ok = c.Get("key1")
	assert.True(t, ok)
	_, ok = c.Get("key3")
	assert.True(t, ok)
}

func TestCache_PromotionIdempotent(t *testing.T) {
	c, err := New[string, string](3)
	assert.NoError(t, err)

	c.Set("key1", "value1")
	c.Set("key2", "value2")
	c.Set("key3", "value3")

	v1, ok := c.Get("key2")
	assert.True(t, ok)
	order := c.Keys()

	v2, ok := c.Get("key2")
	assert.True(t, ok)
	assert.Equal(t, v1, v2)
	assert.Equal(t, order, c.Keys())
}

// Mirrors the classic fill/access/evict walkthrough: k1..k3 fill a 3-entry
// cache, then each insert evicts the current least recently touched key.
func TestCache_Scenario(t *testing.T) {
	c, err := New[string, string](3)
	assert.NoError(t, err)

	c.Set("k1", "v1")
	c.Set("k2", "v2")
	c.Set("k3", "v3")
	assert.Equal(t, 3, c.Len())

	// k4 evicts k1.
	c.Set("k4", "v4")
	_, ok := c.Get("k1")
	assert.False(t, ok)
	v, ok := c.Get("k4")
	assert.True(t, ok)
	assert.Equal(t, "v4", v)

	// Access k2 so that k3 becomes least recently used.
	v, ok = c.Get("k2")
	assert.True(t, ok)
	assert.Equal(t, "v2", v)

	// k5 evicts k3.
	c.Set("k5", "v5")
	_, ok = c.Get("k3")
	assert.False(t, ok)

	// Update k4 in place so that k2 becomes least recently used.
	c.Set("k4", "v44")
	assert.Equal(t, 3, c.Len())

	// k6 evicts k2.
	c.Set("k6", "v6")
	_, ok = c.Get("k2")
	assert.False(t, ok)

	v, ok = c.Get("k4")
	assert.True(t, ok)
	assert.Equal(t, "v44", v)
	v, ok = c.Get("k5")
	assert.True(t, ok)
	assert.Equal(t, "v5", v)
	v, ok = c.Get("k6")
	assert.True(t, ok)
	assert.Equal(t, "v6", v)
	assert.Equal(t, 3, c.Len())
}

func TestCache_CapacityOne(t *testing.T) {
	c, err := New[string, string](1)
	assert.NoError(t, err)

	c.Set("key1", "value1")
	c.Set("key1", "value1b")
	assert.Equal(t, 1, c.Len())
	v, ok := c.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, "value1b", v)

	c.Set("key2", "value2")
	assert.Equal(t, 1, c.Len())
	_, ok = c.Get("key1")
	assert.False(t, ok)
	v, ok = c.Get("key2")
	assert.True(t, ok)
	assert.Equal(t, "value2", v)
}

func TestCache_Remove(t *testing.T) {
	c, err := New[string, string](2)
	assert.NoError(t, err)

	c.Set("key1", "value1")
	c.Set("key2", "value2")

	assert.True(t, c.Remove("key1"))
	assert.False(t, c.Remove("key1"))
	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("key1")
	assert.False(t, ok)

	// The freed slot is reusable without disturbing key2.
	c.Set("key3", "value3")
	c.Set("key4", "value4") // evicts key2
	_, ok = c.Get("key2")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

// Directory and recency order must agree on the resident key set after every
// operation, and the size must never exceed the bound.
func TestCache_Invariants(t *testing.T) {
	c, err := New[int, int](4)
	assert.NoError(t, err)

	check := func() {
		keys := c.Keys()
		assert.Equal(t, c.Len(), len(keys))
		assert.LessOrEqual(t, c.Len(), c.Capacity())
		for _, k := range keys {
			_, ok := c.entries[k]
			assert.True(t, ok)
		}
	}

	for i := 0; i < 32; i++ {
		c.Set(i%7, i)
		check()
		c.Get(i % 5)
		check()
		if i%3 == 0 {
			c.Remove(i % 11)
			check()
		}
	}
}
