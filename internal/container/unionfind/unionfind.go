// Package unionfind implements a disjoint set for membership queries.
package unionfind

// UnionFind tracks a partition of ids into disjoint sets. Lookups compress
// paths and unions merge the smaller set into the larger, keeping operations
// near constant time.
type UnionFind[T comparable] struct {
	parent map[T]T
	size   map[T]int
}

func New[T comparable]() *UnionFind[T] {
	return &UnionFind[T]{
		parent: make(map[T]T),
		size:   make(map[T]int),
	}
}

// Union merges the sets containing id1 and id2, adding either id first if
// unseen.
func (u *UnionFind[T]) Union(id1, id2 T) {
	r1 := u.findRoot(id1)
	r2 := u.findRoot(id2)
	if r1 == r2 {
		return
	}
	// Merge the smaller set into the larger set.
	if u.size[r1] < u.size[r2] {
		r1, r2 = r2, r1
	}
	u.parent[r2] = r1
	u.size[r1] += u.size[r2]
}

// Add registers id as a singleton set if unseen.
func (u *UnionFind[T]) Add(id T) {
	if _, ok := u.parent[id]; !ok {
		u.parent[id] = id
		u.size[id] = 1
	}
}

// Connected reports whether id1 and id2 are in the same set.
func (u *UnionFind[T]) Connected(id1, id2 T) bool {
	if !u.contains(id1) || !u.contains(id2) {
		return false
	}
	return u.findRoot(id1) == u.findRoot(id2)
}

// SetSize returns the size of the set containing id, or 0 if id is unseen.
func (u *UnionFind[T]) SetSize(id T) int {
	if !u.contains(id) {
		return 0
	}
	return u.size[u.findRoot(id)]
}

func (u *UnionFind[T]) contains(id T) bool {
	_, ok := u.parent[id]
	return ok
}

// findRoot returns the root of id's set, adding id if unseen, and compresses
// the walked path under the root.
func (u *UnionFind[T]) findRoot(id T) T {
	u.Add(id)
	root := id
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for walk := id; walk != root; {
		next := u.parent[walk]
		u.parent[walk] = root
		walk = next
	}
	return root
}
