package matching

import (
	"math"

	"github.com/katalvlaran/bimatch/core"
)

// infDistance marks a left vertex not reached by the current BFS layer.
const infDistance = math.MaxInt

// HopcroftKarp computes maximum bipartite matchings by repeatedly finding a
// maximal set of vertex-disjoint shortest augmenting paths.
//
// Steps per phase:
//  1. BFS from every free left vertex, layering left vertices by alternating
//     path length; stop layering once a free right vertex is reachable.
//  2. DFS from each free left vertex along strictly increasing layers,
//     flipping the first augmenting path found; dead ends get infDistance.
//
// Complexity:
//
//	Time:   O(E·√V).
//	Memory: O(V) for match arrays and layers.
type HopcroftKarp struct{}

// NewHopcroftKarp returns a stateless Hopcroft–Karp matcher.
func NewHopcroftKarp() *HopcroftKarp { return &HopcroftKarp{} }

// Name implements Matcher.
func (*HopcroftKarp) Name() string { return "Hopcroft Karp" }

// MaximumMatching implements Matcher.
func (*HopcroftKarp) MaximumMatching(adj core.Adjacency) (Matching, error) {
	ix, err := indexAdjacency(adj)
	if err != nil {
		return nil, err
	}

	hk := &hkState{
		adj:        ix.leftAdj,
		distance:   make([]int, len(ix.left)),
		matchLeft:  make([]int, len(ix.left)),
		matchRight: make([]int, len(ix.right)),
	}
	for i := range hk.matchLeft {
		hk.matchLeft[i] = unMatched
	}
	for j := range hk.matchRight {
		hk.matchRight[j] = unMatched
	}

	for hk.bfs() {
		for u := range hk.matchLeft {
			if hk.matchLeft[u] == unMatched {
				hk.dfs(u)
			}
		}
	}

	return ix.toMatching(hk.matchLeft), nil
}

// hkState holds per-call working arrays; MaximumMatching allocates a fresh
// one so the matcher itself stays safe for concurrent use.
type hkState struct {
	adj        [][]int
	distance   []int
	matchLeft  []int
	matchRight []int
}

// bfs layers the left side and reports whether any augmenting path exists.
func (s *hkState) bfs() bool {
	queue := make([]int, 0, len(s.matchLeft))
	for u := range s.matchLeft {
		if s.matchLeft[u] == unMatched {
			s.distance[u] = 0
			queue = append(queue, u)
		} else {
			s.distance[u] = infDistance
		}
	}

	found := false
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, v := range s.adj[u] {
			w := s.matchRight[v]
			if w == unMatched {
				found = true
			} else if s.distance[w] == infDistance {
				s.distance[w] = s.distance[u] + 1
				queue = append(queue, w)
			}
		}
	}
	return found
}

// dfs augments along the layered graph from left vertex u.
func (s *hkState) dfs(u int) bool {
	for _, v := range s.adj[u] {
		w := s.matchRight[v]
		if w == unMatched || (s.distance[w] == s.distance[u]+1 && s.dfs(w)) {
			s.matchLeft[u] = v
			s.matchRight[v] = u
			return true
		}
	}
	s.distance[u] = infDistance
	return false
}
