// Package heap implements a binary heap with a pluggable comparison.
package heap

import (
	"cmp"

	apperrors "cachebox/pkg/errors"
)

// Heap provides constant time access to the minimum (or, with an inverted
// comparison, maximum) value. Push and Pop take lg2(N) time.
type Heap[T any] struct {
	// elems is indexed from 1 to simplify parent/child index computations.
	elems []T
	less  func(a, b T) bool
}

// New returns a min-heap over an ordered type.
func New[T cmp.Ordered]() *Heap[T] {
	return NewFunc[T](cmp.Less[T])
}

// NewFunc returns a heap ordered by less; invert the comparison for a
// max-heap.
func NewFunc[T any](less func(a, b T) bool) *Heap[T] {
	var sentinel T
	return &Heap[T]{
		elems: []T{sentinel},
		less:  less,
	}
}

// Push adds v to the heap.
func (h *Heap[T]) Push(v T) {
	h.elems = append(h.elems, v)
	h.bubbleUp(len(h.elems) - 1)
}

// Top returns but does not remove the top of the heap.
func (h *Heap[T]) Top() (T, error) {
	if h.Len() == 0 {
		var zero T
		return zero, apperrors.ErrEmptyContainer
	}
	return h.elems[1], nil
}

// Pop removes but does not return the top of the heap.
func (h *Heap[T]) Pop() error {
	if h.Len() == 0 {
		return apperrors.ErrEmptyContainer
	}
	// Move the rightmost child to the root, then restore order downward.
	last := len(h.elems) - 1
	h.elems[1] = h.elems[last]
	h.elems = h.elems[:last]
	h.bubbleDown(1)
	return nil
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.elems) - 1
}

// bubbleUp restores the heap property on the parents of i.
func (h *Heap[T]) bubbleUp(i int) {
	for i > 1 {
		parent := i / 2
		if !h.less(h.elems[i], h.elems[parent]) {
			return
		}
		h.elems[i], h.elems[parent] = h.elems[parent], h.elems[i]
		i = parent
	}
}

// bubbleDown restores the heap property on the children of i.
func (h *Heap[T]) bubbleDown(i int) {
	n := len(h.elems)
	for {
		smallest := i
		if l := 2 * i; l < n && h.less(h.elems[l], h.elems[smallest]) {
			smallest = l
		}
		if r := 2*i + 1; r < n && h.less(h.elems[r], h.elems[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.elems[i], h.elems[smallest] = h.elems[smallest], h.elems[i]
		i = smallest
	}
}
