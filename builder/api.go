// SPDX-License-Identifier: MIT
// Package: bimatch/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(n, m, gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go (single place to read docs).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Use WithSeed(...) to freeze stochastic paths (RandomBipartite).
//   - Generate(...) is the one-call form used by the benchmark harness.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bimatch/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph mode flags (directed/undirected).
//   - Preserve determinism for the same config and call order.
//   - Treat an already present edge as success (idempotent union).
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new bipartite core.Graph with n vertices on side A and
// m on side B (graph options gopts), resolves the builder configuration from
// bopts, and applies all constructors in order. Partition labels exist before
// the first constructor runs.
//
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Graph allocation: O(n+m).
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - ErrTooFewVertices for n < 0 or m < 0.
//   - ErrConstructFailed for a nil constructor.
//   - Wrapped constructor errors; branch with errors.Is.
func BuildGraph(n, m int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if err := validatePartition(methodBuildGraph, n, m); err != nil {
		return nil, err
	}

	g, err := core.NewGraph(n, m, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Generate returns a random bipartite graph with n+m vertices where each of
// the n·m cross pairs is an edge independently with probability p. When
// directed is true a second, independent pass adds B→A edges.
//
// It is shorthand for
//
//	BuildGraph(n, m, {WithDirected(directed), WithName(...)}, opts, RandomBipartite(p))
//
// Reproducibility requires WithSeed or WithRand in opts; without an RNG only
// p ∈ {0, 1} succeed.
//
// Complexity: O(n + m + E) expected, E ≈ n·m·p (doubled when directed).
func Generate(n, m int, p float64, directed bool, opts ...BuilderOption) (*core.Graph, error) {
	gopts := []core.GraphOption{
		core.WithDirected(directed),
		core.WithName(fmt.Sprintf("random_bipartite(%d,%d,%g)", n, m, p)),
	}
	return BuildGraph(n, m, gopts, opts, RandomBipartite(p))
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// EmptyBipartite keeps the graph edgeless; useful as an explicit p=0 fixture.
// Complexity: O(1).
//func EmptyBipartite() Constructor

// CompleteBipartite adds every A→B pair (and B→A when directed).
// Complexity: O(n·m) edges.
//func CompleteBipartite() Constructor

// RandomBipartite samples every admissible edge with probability p via
// geometric skipping. Requires cfg.rng when 0 < p < 1.
// Complexity: O(n + E) per pass.
//func RandomBipartite(p float64) Constructor
