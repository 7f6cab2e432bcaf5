// Package bst implements a binary search tree.
package bst

import "cmp"

// Node is a node in a binary search tree.
type Node[T cmp.Ordered] struct {
	Data  T
	Left  *Node[T]
	Right *Node[T]
}

// Insert adds v to the tree rooted at n and returns the root. Duplicates are
// ignored.
func (n *Node[T]) Insert(v T) *Node[T] {
	if n == nil {
		return &Node[T]{Data: v}
	}
	switch {
	case v < n.Data:
		n.Left = n.Left.Insert(v)
	case v > n.Data:
		n.Right = n.Right.Insert(v)
	}
	return n
}

// FromSlice returns a bst initialized from vs.
func FromSlice[T cmp.Ordered](vs []T) *Node[T] {
	var root *Node[T]
	for _, v := range vs {
		root = root.Insert(v)
	}
	return root
}

// Order is a traversal order.
type Order int

const (
	PreOrder Order = iota
	InOrder
	PostOrder
)

// ToSlice returns the tree values in the requested traversal order.
func ToSlice[T cmp.Ordered](root *Node[T], order Order) []T {
	var out []T
	var walk func(n *Node[T])
	walk = func(n *Node[T]) {
		if n == nil {
			return
		}
		switch order {
		case PreOrder:
			out = append(out, n.Data)
			walk(n.Left)
			walk(n.Right)
		case InOrder:
			walk(n.Left)
			out = append(out, n.Data)
			walk(n.Right)
		case PostOrder:
			walk(n.Left)
			walk(n.Right)
			out = append(out, n.Data)
		}
	}
	walk(root)
	return out
}

// Find returns the node containing v or nil if v is not in the tree.
func Find[T cmp.Ordered](root *Node[T], v T) *Node[T] {
	for n := root; n != nil; {
		switch {
		case v < n.Data:
			n = n.Left
		case v > n.Data:
			n = n.Right
		default:
			return n
		}
	}
	return nil
}
