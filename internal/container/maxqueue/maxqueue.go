// Package maxqueue implements a queue with constant time maximum lookup.
package maxqueue

import (
	"cmp"

	apperrors "cachebox/pkg/errors"
)

// MaxQueue is a FIFO container with constant amortized time access to the
// maximum value, kept in a monotonically non-increasing deque of candidates.
type MaxQueue[T cmp.Ordered] struct {
	elems []T
	head  int
	maxv  []T
}

// Push adds v to the end of the queue.
func (q *MaxQueue[T]) Push(v T) {
	q.elems = append(q.elems, v)
	// Values smaller than v can never be the maximum again.
	for len(q.maxv) > 0 && v > q.maxv[len(q.maxv)-1] {
		q.maxv = q.maxv[:len(q.maxv)-1]
	}
	q.maxv = append(q.maxv, v)
}

// Front returns but does not remove the front of the queue.
func (q *MaxQueue[T]) Front() (T, error) {
	if q.Len() == 0 {
		var zero T
		return zero, apperrors.ErrEmptyContainer
	}
	return q.elems[q.head], nil
}

// Max returns but does not remove the maximum value in the queue.
func (q *MaxQueue[T]) Max() (T, error) {
	if q.Len() == 0 {
		var zero T
		return zero, apperrors.ErrEmptyContainer
	}
	return q.maxv[0], nil
}

// Pop removes but does not return the front of the queue.
func (q *MaxQueue[T]) Pop() error {
	if q.Len() == 0 {
		return apperrors.ErrEmptyContainer
	}
	if q.elems[q.head] == q.maxv[0] {
		q.maxv = q.maxv[1:]
	}
	q.head++
	if q.head == len(q.elems) {
		q.elems = q.elems[:0]
		q.head = 0
	}
	return nil
}

// Len returns the number of elements in the queue.
func (q *MaxQueue[T]) Len() int {
	return len(q.elems) - q.head
}
