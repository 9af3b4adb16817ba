// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics facade over the core types.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.
// AI-HINT (file):
//   - Stats() is an O(1) snapshot; rely on it for logging and quick admissions.

package core

// GraphStats is a value snapshot of a Graph's shape.
type GraphStats struct {
	Name      string
	Directed  bool
	SizeA     int // n
	SizeB     int // m
	Vertices  int // n+m
	EdgeCount int

	// Density is EdgeCount divided by the number of admissible edges:
	// n·m for undirected graphs, 2·n·m for directed ones. Zero when n·m == 0.
	Density float64
}

// Stats produces a consistent, read-only snapshot of the graph shape.
//
// Implementation:
//   - Acquire mu.RLock once, copy counters, release.
//
// Determinism:
//   - Deterministic for a fixed graph state.
//
// Complexity:
//   - Time O(1), Space O(1) plus the returned struct.
//
// AI-Hints:
//   - Density of a RandomBipartite(n,m,p) graph concentrates around p.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Name:      g.name,
		Directed:  g.directed,
		SizeA:     g.sizeA,
		SizeB:     g.sizeB,
		Vertices:  g.sizeA + g.sizeB,
		EdgeCount: g.edgeCount,
	}

	admissible := float64(g.sizeA) * float64(g.sizeB)
	if g.directed {
		admissible *= 2
	}
	if admissible > 0 {
		stats.Density = float64(g.edgeCount) / admissible
	}

	return stats
}
