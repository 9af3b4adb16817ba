// SPDX-License-Identifier: MIT
// Package: bimatch/builder
//
// impl_random_bipartite.go - implementation of RandomBipartite(p) constructor.
//
// Canonical model:
//   - Each of the n·m cross pairs (A_v, B_w) is an edge independently with prob p.
//   - Directed: a second, independent pass over the same n·m positions adds B→A edges.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - p == 0: no edges. p == 1: K_{n,m} (both orientations when directed).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Returns only sentinel errors; never panics at runtime.
//
// Sampling:
//   Positions are laid out row-major (row = A vertex v, column = B offset w).
//   Instead of a Bernoulli trial per position we draw the gap to the next
//   success from the geometric distribution:
//
//       lp  = ln(1-p)
//       gap = floor(ln(1-r) / lp),   r ~ U[0,1)
//
//   and advance the column cursor by 1+gap, carrying overflow into the row.
//
// Complexity:
//   - Time: O(n + E) per pass, E ≈ n·m·p expected; never O(n·m) trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Fixed draw order: A→B pass first, then B→A pass; identical for a fixed seed.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/bimatch/core"
)

// RandomBipartite returns a Constructor that samples a random bipartite graph
// over the target graph's partitions with independent edge probability p.
func RandomBipartite(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if g == nil {
			return fmt.Errorf("%s: nil graph: %w", methodRandomBipartite, ErrConstructFailed)
		}
		if err := validateProbability(methodRandomBipartite, p); err != nil {
			return err
		}

		// 2) Boundary policies need no randomness.
		if p == MinProbability {
			return nil
		}
		if p == MaxProbability {
			return addComplete(methodRandomBipartite, g)
		}

		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomBipartite, ErrNeedRandSource)
		}

		n, m := g.PartitionSizes()

		// 3) A→B pass.
		err := geometricPass(cfg.rng, n, m, p, func(v, w int) error {
			return addEdge(methodRandomBipartite, g, v, n+w)
		})
		if err != nil {
			return err
		}

		// 4) B→A pass with fresh draws from the same stream.
		if g.Directed() {
			err = geometricPass(cfg.rng, n, m, p, func(v, w int) error {
				return addEdge(methodRandomBipartite, g, n+w, v)
			})
			if err != nil {
				return err
			}
		}

		return nil
	}
}

// geometricPass walks the n×m position grid in row-major order, calling emit
// for each selected (row, column) pair. Requires 0 < p < 1.
func geometricPass(rng *rand.Rand, n, m int, p float64, emit func(v, w int) error) error {
	// Log1p keeps lp non-zero for p far below machine epsilon.
	lp := math.Log1p(-p)
	positions := float64(n) * float64(m)

	v, w := 0, -1
	for v < n {
		lr := math.Log1p(-rng.Float64())
		gap := math.Floor(lr / lp)

		// A gap reaching past every position ends the pass; this also keeps
		// the int conversion below in range.
		if gap >= positions {
			return nil
		}
		w += 1 + int(gap)

		// Carry column overflow into the row index.
		for w >= m && v < n {
			w -= m
			v++
		}
		if v < n {
			if err := emit(v, w); err != nil {
				return err
			}
		}
	}

	return nil
}
