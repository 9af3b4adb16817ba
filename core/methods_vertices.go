// File: methods_vertices.go
// Role: Vertex queries: VertexCount/Vertices/HasVertex/Side/Partition sizes/Degree.
// Determinism:
//   - Vertices() returns ids in ascending order.
// Concurrency:
//   - Read queries under mu read lock.

package core

// VertexCount returns n+m.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sizeA + g.sizeB
}

// Vertices returns every vertex id in ascending order (0..n+m-1).
// Complexity: O(n+m).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, g.sizeA+g.sizeB)
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// HasVertex reports whether id lies in 0..n+m-1.
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertex(id)
}

// Side returns the partition label of id.
func (g *Graph) Side(id int) (Side, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(id) {
		return SideA, ErrVertexNotFound
	}
	return g.sideOf(id), nil
}

// PartitionSizes returns (n, m).
func (g *Graph) PartitionSizes() (n, m int) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sizeA, g.sizeB
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Name returns the graph name set by WithName or SetName.
func (g *Graph) Name() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.name
}

// SetName replaces the graph name.
func (g *Graph) SetName(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.name = name
}

// Degree returns the in-, out- and undirected degree of id.
// For undirected graphs only the undirected degree is non-zero; for directed
// graphs undirected is always 0.
// Complexity: O(1).
func (g *Graph) Degree(id int) (in, out, undirected int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(id) {
		return 0, 0, 0, ErrVertexNotFound
	}
	if !g.directed {
		return 0, 0, len(g.out[id]), nil
	}
	return len(g.in[id]), len(g.out[id]), 0, nil
}

// hasVertex assumes mu is held.
func (g *Graph) hasVertex(id int) bool {
	return id >= 0 && id < g.sizeA+g.sizeB
}

// sideOf assumes mu is held and id is valid.
func (g *Graph) sideOf(id int) Side {
	if id < g.sizeA {
		return SideA
	}
	return SideB
}
