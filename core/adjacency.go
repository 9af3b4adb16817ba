// File: adjacency.go
// Role: Non-mutating projection of a Graph into a plain adjacency mapping.
// Determinism:
//   - Two projections of the same graph are equal (set membership is exact).
// Concurrency:
//   - Read lock only on the source; the result shares no memory with it.

package core

// Adjacency maps a vertex id to the set of its neighbour ids.
type Adjacency map[int]map[int]struct{}

// Len returns the number of keys.
func (a Adjacency) Len() int { return len(a) }

// EdgeCount returns the total number of (key, neighbour) pairs.
func (a Adjacency) EdgeCount() int {
	total := 0
	for _, set := range a {
		total += len(set)
	}
	return total
}

// Project returns the adjacency of vertices 0..aSize-1.
//
// Every key in {0..aSize-1} is present, mapped to a non-nil (possibly empty)
// set. Neighbours are collected regardless of direction: for directed graphs
// the set is out ∪ in. Vertices ≥ aSize never appear as keys but do appear
// as neighbour values.
//
// Errors: ErrVertexNotFound if aSize < 0 or aSize > VertexCount().
// Complexity: O(aSize + Σ deg(v)).
func Project(g *Graph, aSize int) (Adjacency, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if aSize < 0 || aSize > g.sizeA+g.sizeB {
		return nil, ErrVertexNotFound
	}

	adj := make(Adjacency, aSize)
	var v, w int
	for v = 0; v < aSize; v++ {
		size := len(g.out[v])
		if g.directed {
			size += len(g.in[v])
		}
		set := make(map[int]struct{}, size)
		for w = range g.out[v] {
			set[w] = struct{}{}
		}
		if g.directed {
			for w = range g.in[v] {
				set[w] = struct{}{}
			}
		}
		adj[v] = set
	}

	return adj, nil
}
