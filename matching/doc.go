// Package matching provides maximum-cardinality bipartite matching over a
// core.Adjacency (left vertex → set of right neighbours).
//
// Two interchangeable implementations of the Matcher interface are offered:
//
//   - HopcroftKarp  : phases of layered BFS + vertex-disjoint DFS, O(E·√V).
//   - FordFulkerson : unit-capacity max-flow with DFS augmenting paths, O(E·F).
//
// Both re-index the adjacency in ascending id order before running, so the
// same input always explores the same paths. Both return ErrNotBipartite when
// a neighbour id is also a key.
//
// Validate checks a Matching against its adjacency and is used by tests and
// the benchmark harness to catch broken implementations early.
//
// Example:
//
//	adj, _ := core.Project(g, n)
//	m, err := matching.NewHopcroftKarp().MaximumMatching(adj)
package matching
