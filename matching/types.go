package matching

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bimatch/core"
)

// ErrNotBipartite is returned when a neighbour id is also a key of the
// adjacency, i.e. the left side is not an independent set.
var ErrNotBipartite = fmt.Errorf("matching: %w", errNotBipartite)
var errNotBipartite = errors.New("adjacency is not bipartite")

// ErrInvalidMatching is returned by Validate when a matching uses a missing
// edge or matches a vertex twice.
var ErrInvalidMatching = fmt.Errorf("matching: %w", errInvalidMatching)
var errInvalidMatching = errors.New("invalid matching")

// Matching maps each matched left vertex to its right partner.
type Matching map[int]int

// Size returns the number of matched pairs.
func (m Matching) Size() int { return len(m) }

// Matcher is the single-operation capability the benchmark harness consumes:
// adjacency in, maximum matching out. Implementations must return
// synchronously and treat an empty adjacency as a zero-size matching.
type Matcher interface {
	// Name identifies the algorithm in benchmark records.
	Name() string
	// MaximumMatching computes a maximum-cardinality matching of adj.
	MaximumMatching(adj core.Adjacency) (Matching, error)
}

// Func adapts a plain function to the Matcher interface.
type Func struct {
	Label string
	Fn    func(core.Adjacency) (Matching, error)
}

// Name implements Matcher.
func (f Func) Name() string { return f.Label }

// MaximumMatching implements Matcher.
func (f Func) MaximumMatching(adj core.Adjacency) (Matching, error) { return f.Fn(adj) }

// Validate checks that every pair in m is an edge of adj and that no right
// vertex is used twice.
// Complexity: O(|m|).
func Validate(adj core.Adjacency, m Matching) error {
	used := make(map[int]int, len(m))
	for u, v := range m {
		nbrs, ok := adj[u]
		if !ok {
			return fmt.Errorf("%w: left vertex %d not in adjacency", ErrInvalidMatching, u)
		}
		if _, ok = nbrs[v]; !ok {
			return fmt.Errorf("%w: %d–%d is not an edge", ErrInvalidMatching, u, v)
		}
		if prev, dup := used[v]; dup {
			return fmt.Errorf("%w: right vertex %d matched to %d and %d", ErrInvalidMatching, v, prev, u)
		}
		used[v] = u
	}
	return nil
}
