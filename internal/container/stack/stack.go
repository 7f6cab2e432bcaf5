// Package stack implements a LIFO container.
package stack

import apperrors "cachebox/pkg/errors"

// Stack is a LIFO container of elements.
type Stack[T any] struct {
	elems []T
}

// Push appends v to the top of the stack.
func (s *Stack[T]) Push(v T) {
	s.elems = append(s.elems, v)
}

// Top returns but does not remove the top of the stack.
func (s *Stack[T]) Top() (T, error) {
	if len(s.elems) == 0 {
		var zero T
		return zero, apperrors.ErrEmptyContainer
	}
	return s.elems[len(s.elems)-1], nil
}

// Pop removes but does not return the top of the stack.
func (s *Stack[T]) Pop() error {
	if len(s.elems) == 0 {
		return apperrors.ErrEmptyContainer
	}
	s.elems = s.elems[:len(s.elems)-1]
	return nil
}

// Len returns the number of elements in the stack.
func (s *Stack[T]) Len() int {
	return len(s.elems)
}
