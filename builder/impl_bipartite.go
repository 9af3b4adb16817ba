// SPDX-License-Identifier: MIT
// Package: bimatch/builder
//
// impl_bipartite.go — implementation of EmptyBipartite and CompleteBipartite.
//
// Contract:
//   • Partition sizes come from the target graph (BuildGraph fixes them).
//   • CompleteBipartite emits every cross-pair A_i → B_j; mirrors B_j → A_i
//     only if g.Directed().
//   • Edges already present are left untouched (idempotent union).
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n·m) edges emission (doubled when directed).
//   • Space: O(1) extra.
//
// Determinism:
//   • Edge emission order: i asc over A, inner j asc over B.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bimatch/core"
)

// EmptyBipartite returns a Constructor that adds no edges. Vertices and their
// partition labels already exist once BuildGraph allocated the graph.
func EmptyBipartite() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if g == nil {
			return fmt.Errorf("%s: nil graph: %w", methodEmptyBipartite, ErrConstructFailed)
		}
		return nil
	}
}

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n,m}.
func CompleteBipartite() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if g == nil {
			return fmt.Errorf("%s: nil graph: %w", methodCompleteBipartite, ErrConstructFailed)
		}
		return addComplete(methodCompleteBipartite, g)
	}
}

// addComplete connects every A vertex to every B vertex.
func addComplete(method string, g *core.Graph) error {
	n, m := g.PartitionSizes()
	directed := g.Directed()

	var i, j int
	for i = 0; i < n; i++ {
		for j = n; j < n+m; j++ {
			if err := addEdge(method, g, i, j); err != nil {
				return err
			}
			if directed {
				if err := addEdge(method, g, j, i); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// addEdge inserts u→v, treating an existing edge as success.
func addEdge(method string, g *core.Graph, u, v int) error {
	err := g.AddEdge(u, v)
	if err == nil || errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		return nil
	}
	return fmt.Errorf("%s: AddEdge(%d→%d): %w", method, u, v, err)
}
