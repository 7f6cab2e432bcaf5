// Package list implements a singly linked list with in-place reversal.
package list

// Node is a node in a singly linked list.
type Node[T any] struct {
	Data T
	Next *Node[T]
}

// FromSlice returns a list initialized from vs, in order.
func FromSlice[T any](vs []T) *Node[T] {
	var head, tail *Node[T]
	for _, v := range vs {
		n := &Node[T]{Data: v}
		if tail == nil {
			head = n
		} else {
			tail.Next = n
		}
		tail = n
	}
	return head
}

// ToSlice returns a slice of the list values, in order.
func ToSlice[T any](head *Node[T]) []T {
	var out []T
	for n := head; n != nil; n = n.Next {
		out = append(out, n.Data)
	}
	return out
}

// Reverse performs an in-place reversal of the list and returns the new head.
func Reverse[T any](head *Node[T]) *Node[T] {
	var prev *Node[T]
	for n := head; n != nil; {
		next := n.Next
		n.Next = prev
		prev = n
		n = next
	}
	return prev
}

// Len returns the number of nodes in the list.
func Len[T any](head *Node[T]) int {
	count := 0
	for n := head; n != nil; n = n.Next {
		count++
	}
	return count
}
