// Package maxstack implements a stack with constant time maximum lookup.
package maxstack

import (
	"cmp"

	apperrors "cachebox/pkg/errors"
)

// MaxStack is a LIFO container with constant time access to the maximum
// value, kept on an auxiliary stack of running maxima.
type MaxStack[T cmp.Ordered] struct {
	elems []T
	maxv  []T
}

// Push adds v to the top of the stack.
func (s *MaxStack[T]) Push(v T) {
	s.elems = append(s.elems, v)
	if len(s.maxv) == 0 || v >= s.maxv[len(s.maxv)-1] {
		s.maxv = append(s.maxv, v)
	}
}

// Top returns but does not remove the top of the stack.
func (s *MaxStack[T]) Top() (T, error) {
	if len(s.elems) == 0 {
		var zero T
		return zero, apperrors.ErrEmptyContainer
	}
	return s.elems[len(s.elems)-1], nil
}

// Max returns but does not remove the maximum value in the stack.
func (s *MaxStack[T]) Max() (T, error) {
	if len(s.elems) == 0 {
		var zero T
		return zero, apperrors.ErrEmptyContainer
	}
	return s.maxv[len(s.maxv)-1], nil
}

// Pop removes but does not return the top of the stack.
func (s *MaxStack[T]) Pop() error {
	if len(s.elems) == 0 {
		return apperrors.ErrEmptyContainer
	}
	top := s.elems[len(s.elems)-1]
	if top == s.maxv[len(s.maxv)-1] {
		s.maxv = s.maxv[:len(s.maxv)-1]
	}
	s.elems = s.elems[:len(s.elems)-1]
	return nil
}

// Len returns the number of elements in the stack.
func (s *MaxStack[T]) Len() int {
	return len(s.elems)
}
