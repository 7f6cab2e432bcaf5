// Package tree implements a binary tree built and flattened in level order.
package tree

// Node is a node in a binary tree.
type Node[T any] struct {
	Data  T
	Left  *Node[T]
	Right *Node[T]
}

// FromSlice returns a tree initialized from vs. There is no ordering with
// respect to value: values are inserted in level order as they appear,
// starting at the root and filling sibling nodes left to right.
func FromSlice[T any](vs []T) *Node[T] {
	if len(vs) == 0 {
		return nil
	}
	root := &Node[T]{Data: vs[0]}
	pending := []*Node[T]{root}
	for _, v := range vs[1:] {
		n := &Node[T]{Data: v}
		parent := pending[0]
		if parent.Left == nil {
			parent.Left = n
		} else {
			parent.Right = n
			pending = pending[1:] // Both children populated.
		}
		pending = append(pending, n)
	}
	return root
}

// ToSlice returns the tree values in level order.
func ToSlice[T any](root *Node[T]) []T {
	if root == nil {
		return nil
	}
	var out []T
	nodes := []*Node[T]{root}
	for len(nodes) > 0 {
		n := nodes[0]
		nodes = nodes[1:]
		out = append(out, n.Data)
		if n.Left != nil {
			nodes = append(nodes, n.Left)
		}
		if n.Right != nil {
			nodes = append(nodes, n.Right)
		}
	}
	return out
}

// Height returns the height of the tree in edges. Empty and single-node
// trees have height 0.
func Height[T any](root *Node[T]) int {
	if root == nil || (root.Left == nil && root.Right == nil) {
		return 0
	}
	return 1 + max(Height(root.Left), Height(root.Right))
}

// Size returns the number of nodes in the tree.
func Size[T any](root *Node[T]) int {
	if root == nil {
		return 0
	}
	return 1 + Size(root.Left) + Size(root.Right)
}
