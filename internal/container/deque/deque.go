// Package deque implements a double-ended queue over a doubly linked list.
package deque

import apperrors "cachebox/pkg/errors"

type node[T any] struct {
	data T
	prev *node[T]
	next *node[T]
}

// Deque is a double-ended queue with constant time access to both ends. The
// interface is the union of a stack and a queue.
type Deque[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// PushBack appends v to the end of the deque.
func (d *Deque[T]) PushBack(v T) {
	n := &node[T]{data: v, prev: d.tail}
	if d.tail == nil {
		d.head = n
	} else {
		d.tail.next = n
	}
	d.tail = n
	d.size++
}

// PushFront prepends v to the front of the deque.
func (d *Deque[T]) PushFront(v T) {
	n := &node[T]{data: v, next: d.head}
	if d.head == nil {
		d.tail = n
	} else {
		d.head.prev = n
	}
	d.head = n
	d.size++
}

// Back returns but does not remove the back of the deque.
func (d *Deque[T]) Back() (T, error) {
	if d.tail == nil {
		var zero T
		return zero, apperrors.ErrEmptyContainer
	}
	return d.tail.data, nil
}

// Front returns but does not remove the front of the deque.
func (d *Deque[T]) Front() (T, error) {
	if d.head == nil {
		var zero T
		return zero, apperrors.ErrEmptyContainer
	}
	return d.head.data, nil
}

// PopBack removes but does not return the back of the deque.
func (d *Deque[T]) PopBack() error {
	if d.tail == nil {
		return apperrors.ErrEmptyContainer
	}
	d.tail = d.tail.prev
	if d.tail == nil {
		d.head = nil
	} else {
		d.tail.next = nil
	}
	d.size--
	return nil
}

// PopFront removes but does not return the front of the deque.
func (d *Deque[T]) PopFront() error {
	if d.head == nil {
		return apperrors.ErrEmptyContainer
	}
	d.head = d.head.next
	if d.head == nil {
		d.tail = nil
	} else {
		d.head.prev = nil
	}
	d.size--
	return nil
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	return d.size
}
