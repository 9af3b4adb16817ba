// Package builder provides reusable “functional‐options”‐style constructors
// for bipartite core.Graph instances, centralizing RNG configuration,
// validation and edge emission so fixtures and benchmarks stay reproducible.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        allocate a K-partitioned graph and run Constructors in order.
//     – Generate:          one-call random bipartite graph (n, m, p, directed, opts...).
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed/WithRand: explicit RNG injection; no package-level RNG exists.
//   - Topologies (Constructor implementations):
//     – EmptyBipartite:    n+m labelled vertices, no edges.
//     – CompleteBipartite: K_{n,m}.
//     – RandomBipartite:   independent edges with probability p, sampled by
//     geometric skipping in O(n + E) instead of O(n·m).
//   - Validation helpers:
//     – validatePartition:   ensure n, m ≥ 0.
//     – validateProbability: ensure p ∈ [0.0,1.0].
//
// Guarantees:
//
//   - Idempotent edges: re-running a constructor on g never duplicates edges.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors for invalid build parameters, wrapping
//     sentinels (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource).
//   - Determinism: same (n, m, p, directed, seed) ⇒ identical edge set.
//
// Example:
//
//	g, err := builder.Generate(1000, 1000, 0.01, false, builder.WithSeed(42))
//	if err != nil {
//		return err
//	}
//	adj, _ := core.Project(g, 1000)
package builder
