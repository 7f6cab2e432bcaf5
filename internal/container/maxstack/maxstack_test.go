package maxstack

import (
	"testing"

	apperrors "cachebox/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func requireMax(t *testing.T, s *MaxStack[int], expected int) {
	v, err := s.Max()
	assert.NoError(t, err)
	assert.Equal(t, expected, v)
}

func TestMaxTracksPushesAndPops(t *testing.T) {
	var s MaxStack[int]

	s.Push(3)
	requireMax(t, &s, 3)
	s.Push(1)
	requireMax(t, &s, 3)
	s.Push(5)
	requireMax(t, &s, 5)
	s.Push(4)
	requireMax(t, &s, 5)

	assert.NoError(t, s.Pop()) // 4
	requireMax(t, &s, 5)
	assert.NoError(t, s.Pop()) // 5
	requireMax(t, &s, 3)
	assert.NoError(t, s.Pop()) // 1
	requireMax(t, &s, 3)
}

// Equal values must each hold their own slot on the max stack, otherwise
// popping one duplicate would drop the maximum early.
func TestDuplicateMaxima(t *testing.T) {
	var s MaxStack[int]

	s.Push(2)
	s.Push(2)
	assert.NoError(t, s.Pop())
	requireMax(t, &s, 2)
}

func TestEmptyMaxStack(t *testing.T) {
	var s MaxStack[int]

	_, err := s.Top()
	assert.ErrorIs(t, err, apperrors.ErrEmptyContainer)
	_, err = s.Max()
	assert.ErrorIs(t, err, apperrors.ErrEmptyContainer)
	assert.ErrorIs(t, s.Pop(), apperrors.ErrEmptyContainer)
}
