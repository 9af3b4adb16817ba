// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount/Neighbors/Successors.
// Determinism:
//   - Edges() returns edges sorted by (From, To) asc.
//   - Neighbors()/Successors() return ids sorted asc.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.
// AI-HINT (file):
//   - Intra-partition edges are rejected with ErrSamePartition.
//   - A second insertion of the same pair (same direction when directed) returns ErrMultiEdgeNotAllowed.

package core

import "sort"

// AddEdge inserts the edge from→to.
//
// Steps:
//  1. Validate both endpoints exist (ErrVertexNotFound).
//  2. Validate the endpoints lie on different sides (ErrSamePartition).
//  3. Reject a parallel edge (ErrMultiEdgeNotAllowed).
//  4. Link out/in sets; mirror when undirected.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Endpoint validation
	if !g.hasVertex(from) || !g.hasVertex(to) {
		return ErrVertexNotFound
	}
	// 2) Bipartite constraint
	if g.sideOf(from) == g.sideOf(to) {
		return ErrSamePartition
	}
	// 3) Multi-edge check
	if _, dup := g.out[from][to]; dup {
		return ErrMultiEdgeNotAllowed
	}

	// 4) Link
	link(g.out, from, to)
	if g.directed {
		link(g.in, to, from)
	} else {
		link(g.out, to, from)
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether from→to exists. For undirected graphs the order of
// endpoints does not matter.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(from) || !g.hasVertex(to) {
		return false
	}
	_, ok := g.out[from][to]
	return ok
}

// EdgeCount returns the number of edges. An undirected edge counts once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns all edges sorted by (From, To).
// Undirected edges are reported once, with the A endpoint in From.
// Complexity: O(E log d_max).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, 0, g.edgeCount)
	var v, w int
	for v = range g.out {
		if !g.directed && v >= g.sizeA {
			break
		}
		for _, w = range sortedKeys(g.out[v]) {
			edges = append(edges, Edge{From: v, To: w})
		}
	}
	return edges
}

// Successors returns the out-neighbours of id sorted ascending.
// For undirected graphs this equals Neighbors.
func (g *Graph) Successors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(id) {
		return nil, ErrVertexNotFound
	}
	return sortedKeys(g.out[id]), nil
}

// Neighbors returns every vertex adjacent to id regardless of edge direction,
// sorted ascending.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(id) {
		return nil, ErrVertexNotFound
	}
	if !g.directed {
		return sortedKeys(g.out[id]), nil
	}

	merged := make(map[int]struct{}, len(g.out[id])+len(g.in[id]))
	for w := range g.out[id] {
		merged[w] = struct{}{}
	}
	for w := range g.in[id] {
		merged[w] = struct{}{}
	}
	return sortedKeys(merged), nil
}

// link inserts w into sets[v], allocating the set on first use.
func link(sets []map[int]struct{}, v, w int) {
	if sets[v] == nil {
		sets[v] = make(map[int]struct{})
	}
	sets[v][w] = struct{}{}
}

// sortedKeys returns the members of set in ascending order.
func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
