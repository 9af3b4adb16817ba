package matching

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/bimatch/core"
)

// unMatched marks an unmatched vertex index in match arrays.
const unMatched = -1

// indexed is a dense, deterministic re-labelling of an Adjacency:
// left[i] and right[j] hold the original ids, leftAdj[i] lists right indices
// in ascending id order.
type indexed struct {
	left    []int
	right   []int
	leftAdj [][]int
}

// indexAdjacency sorts keys and neighbour ids so every algorithm explores
// the same order on every run; map iteration order would make timings noisy.
// Complexity: O(V log V + E log d_max).
func indexAdjacency(adj core.Adjacency) (*indexed, error) {
	ix := &indexed{left: make([]int, 0, len(adj))}
	for u := range adj {
		ix.left = append(ix.left, u)
	}
	sort.Ints(ix.left)

	rightPos := make(map[int]int)
	for _, u := range ix.left {
		for v := range adj[u] {
			if _, isLeft := adj[v]; isLeft {
				return nil, fmt.Errorf("%w: %d and %d are both keys", ErrNotBipartite, u, v)
			}
			if _, seen := rightPos[v]; !seen {
				rightPos[v] = 0
				ix.right = append(ix.right, v)
			}
		}
	}
	sort.Ints(ix.right)
	for j, v := range ix.right {
		rightPos[v] = j
	}

	ix.leftAdj = make([][]int, len(ix.left))
	for i, u := range ix.left {
		row := make([]int, 0, len(adj[u]))
		for v := range adj[u] {
			row = append(row, rightPos[v])
		}
		sort.Ints(row)
		ix.leftAdj[i] = row
	}

	return ix, nil
}

// toMatching converts matchLeft (left index → right index) back to ids.
func (ix *indexed) toMatching(matchLeft []int) Matching {
	m := make(Matching)
	for i, j := range matchLeft {
		if j != unMatched {
			m[ix.left[i]] = ix.right[j]
		}
	}
	return m
}
