// Package core provides a thread-safe in-memory bipartite Graph over dense
// integer vertex ids, plus the Project view that turns it into a plain
// adjacency mapping.
//
// Layout:
//
//	side A ("n-side"): ids 0 .. n-1      label SideA (0)
//	side B ("m-side"): ids n .. n+m-1    label SideB (1)
//
// Behaviors:
//
//   - Directed vs. undirected edges (WithDirected). Directed graphs keep
//     separate out/in sets so that A→B and B→A may coexist for one pair.
//   - No intra-partition edges (ErrSamePartition) and no parallel edges
//     in the same direction (ErrMultiEdgeNotAllowed).
//   - Deterministic iteration: Vertices(), Edges(), Neighbors() are sorted.
//   - One sync.RWMutex guards all state; reads never block each other.
//
// Projection:
//
//	adj, err := core.Project(g, n)
//	// adj[v] is the full neighbour set of v for every v in 0..n-1,
//	// including empty sets for isolated vertices.
//
// Complexity:
//
//	AddEdge, HasEdge, EdgeCount, Stats: O(1)
//	Edges:                              O(E log d_max)
//	Project(g, k):                      O(k + Σ deg)
package core
