// Package graph implements an adjacency-list graph with breadth first search.
package graph

// Graph is an adjacency list representation of an unweighted graph.
type Graph[V comparable] struct {
	vertices map[V][]V
}

func New[V comparable]() *Graph[V] {
	return &Graph[V]{vertices: make(map[V][]V)}
}

// AddEdge adds an edge from -> to, and the reverse edge unless directed.
// Parallel edges are not recorded.
func (g *Graph[V]) AddEdge(from, to V, directed bool) {
	if !g.hasEdge(from, to) {
		g.vertices[from] = append(g.vertices[from], to)
	}
	if directed {
		// Register `to` even when it has no outgoing edges.
		if _, ok := g.vertices[to]; !ok {
			g.vertices[to] = nil
		}
		return
	}
	if !g.hasEdge(to, from) {
		g.vertices[to] = append(g.vertices[to], from)
	}
}

func (g *Graph[V]) hasEdge(from, to V) bool {
	for _, v := range g.vertices[from] {
		if v == to {
			return true
		}
	}
	return false
}

// Len returns the number of vertices in the graph.
func (g *Graph[V]) Len() int {
	return len(g.vertices)
}

// BFS visits every vertex reachable from start in breadth first order,
// calling visit once per vertex. An unknown start visits nothing.
func (g *Graph[V]) BFS(start V, visit func(V)) {
	if _, ok := g.vertices[start]; !ok {
		return
	}
	seen := map[V]bool{start: true}
	frontier := []V{start}
	for len(frontier) > 0 {
		v := frontier[0]
		frontier = frontier[1:]
		visit(v)
		for _, next := range g.vertices[v] {
			if !seen[next] {
				seen[next] = true
				frontier = append(frontier, next)
			}
		}
	}
}
