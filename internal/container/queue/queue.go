// Package queue implements a FIFO container.
package queue

import apperrors "cachebox/pkg/errors"

type node[T any] struct {
	data T
	next *node[T]
}

// Queue is a FIFO container of elements.
type Queue[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// Push appends v to the end of the queue.
func (q *Queue[T]) Push(v T) {
	n := &node[T]{data: v}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.size++
}

// Front returns but does not remove the front of the queue.
func (q *Queue[T]) Front() (T, error) {
	if q.head == nil {
		var zero T
		return zero, apperrors.ErrEmptyContainer
	}
	return q.head.data, nil
}

// Pop removes but does not return the front of the queue.
func (q *Queue[T]) Pop() error {
	if q.head == nil {
		return apperrors.ErrEmptyContainer
	}
	q.head = q.head.next
	if q.head == nil {
		q.tail = nil
	}
	q.size--
	return nil
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.size
}
