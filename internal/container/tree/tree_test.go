package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	cases := [][]int{
		nil,
		{1},
		{1, 2},
		{1, 2, 3},
		{1, 2, 3, 4, 5, 6, 7},
		{1, 2, 3, 4, 5, 6, 7, 8}, // incomplete last level
	}
	for _, input := range cases {
		root := FromSlice(input)
		assert.Equal(t, len(input), Size(root))
		if len(input) == 0 {
			assert.Nil(t, root)
			continue
		}
		assert.Equal(t, input, ToSlice(root))
	}
}

func TestHeight(t *testing.T) {
	cases := []struct {
		input    []int
		expected int
	}{
		// Empty and 1 node trees have height 0.
		{nil, 0},
		{[]int{1}, 0},
		{[]int{1, 2}, 1},
		{[]int{1, 2, 3}, 1},
		{[]int{1, 2, 3, 4}, 2},
		{[]int{1, 2, 3, 4, 5, 6, 7}, 2},
		{[]int{1, 2, 3, 4, 5, 6, 7, 8}, 3},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, Height(FromSlice(c.input)), "input=%v", c.input)
	}
}

func TestShape(t *testing.T) {
	root := FromSlice([]int{1, 2, 3, 4, 5})
	assert.Equal(t, 2, root.Left.Data)
	assert.Equal(t, 3, root.Right.Data)
	assert.Equal(t, 4, root.Left.Left.Data)
	assert.Equal(t, 5, root.Left.Right.Data)
	assert.Nil(t, root.Right.Left)
}
