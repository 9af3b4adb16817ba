package matching

import "github.com/katalvlaran/bimatch/core"

// FordFulkerson computes maximum bipartite matchings as a maximum flow on the
// unit-capacity network
//
//	source → every left vertex → (adjacency edges) → right vertices → sink
//
// using the Ford–Fulkerson method (DFS-based augmenting paths).
//
// Steps:
//  1. Re-index the adjacency densely (deterministic order).
//  2. Build the residual capacity map capMap[u][v] with unit forward
//     capacities; every arc also gets a reverse entry of capacity 0.
//  3. Repeat until no augmenting path:
//     a. Iterative DFS from source to sink over positive residual capacity.
//     b. Push the bottleneck (always 1 here) along the path.
//  4. A left→right arc carries flow iff its reverse capacity is positive.
//
// Complexity:
//
//	Time:   O(E · F) where F ≤ min(|left|, |right|) is the matching size.
//	Memory: O(V + E) for capMap and the DFS stack.
type FordFulkerson struct{}

// NewFordFulkerson returns a stateless Ford–Fulkerson matcher.
func NewFordFulkerson() *FordFulkerson { return &FordFulkerson{} }

// Name implements Matcher.
func (*FordFulkerson) Name() string { return "Ford Fulkerson" }

// MaximumMatching implements Matcher.
func (*FordFulkerson) MaximumMatching(adj core.Adjacency) (Matching, error) {
	ix, err := indexAdjacency(adj)
	if err != nil {
		return nil, err
	}
	net := buildUnitNetwork(ix)

	// 3) Main Ford–Fulkerson loop: find any augmenting path and push flow.
	for net.augment() {
	}

	// 4) Read the matching off the reverse residual arcs.
	matchLeft := make([]int, len(ix.left))
	for i := range matchLeft {
		matchLeft[i] = unMatched
		u := net.leftNode(i)
		for _, j := range ix.leftAdj[i] {
			if net.capMap[net.rightNode(j)][u] > 0 {
				matchLeft[i] = j
				break
			}
		}
	}

	return ix.toMatching(matchLeft), nil
}

// unitNetwork is the residual graph of the matching flow problem.
// Node ids: 0 = source, 1..L = left, L+1..L+R = right, L+R+1 = sink.
type unitNetwork struct {
	leftCount  int
	rightCount int
	source     int
	sink       int

	// capMap[u][v] = residual capacity u→v.
	capMap []map[int]int
	// order[u] lists every residual neighbour of u in a fixed order.
	order [][]int
}

func (net *unitNetwork) leftNode(i int) int  { return 1 + i }
func (net *unitNetwork) rightNode(j int) int { return 1 + net.leftCount + j }

// buildUnitNetwork lays out source/left/right/sink arcs with unit capacities.
// Complexity: O(V + E).
func buildUnitNetwork(ix *indexed) *unitNetwork {
	L, R := len(ix.left), len(ix.right)
	net := &unitNetwork{
		leftCount:  L,
		rightCount: R,
		source:     0,
		sink:       L + R + 1,
		capMap:     make([]map[int]int, L+R+2),
		order:      make([][]int, L+R+2),
	}
	for u := range net.capMap {
		net.capMap[u] = make(map[int]int)
	}

	for i := 0; i < L; i++ {
		net.addArc(net.source, net.leftNode(i))
	}
	for i, row := range ix.leftAdj {
		for _, j := range row {
			net.addArc(net.leftNode(i), net.rightNode(j))
		}
	}
	for j := 0; j < R; j++ {
		net.addArc(net.rightNode(j), net.sink)
	}

	return net
}

// addArc adds a unit arc u→v and its zero-capacity reverse v→u.
func (net *unitNetwork) addArc(u, v int) {
	net.capMap[u][v] = 1
	net.capMap[v][u] = 0
	net.order[u] = append(net.order[u], v)
	net.order[v] = append(net.order[v], u)
}

// augment finds one augmenting path by iterative DFS and pushes its
// bottleneck. Reports false when the sink is unreachable.
func (net *unitNetwork) augment() bool {
	nodes := len(net.capMap)
	// parent[v] = preceding vertex on the augmenting path, -1 if unvisited
	parent := make([]int, nodes)
	for v := range parent {
		parent[v] = -1
	}
	// minCap[v] = bottleneck capacity from source to v along the discovered path
	minCap := make([]int, nodes)

	type stackEntry struct {
		node int
		flow int
	}
	stack := []stackEntry{{node: net.source, flow: 1}}
	parent[net.source] = net.source
	minCap[net.source] = 1
	found := false

	for len(stack) > 0 && !found {
		entry := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		u := entry.node

		for _, v := range net.order[u] {
			capUV := net.capMap[u][v]
			if capUV <= 0 || parent[v] != -1 {
				continue
			}
			parent[v] = u
			minCap[v] = entry.flow
			if capUV < minCap[v] {
				minCap[v] = capUV
			}
			if v == net.sink {
				found = true
				break
			}
			stack = append(stack, stackEntry{node: v, flow: minCap[v]})
		}
	}

	if !found {
		return false
	}

	delta := minCap[net.sink]
	for v := net.sink; v != net.source; v = parent[v] {
		u := parent[v]
		net.capMap[u][v] -= delta
		net.capMap[v][u] += delta
	}
	return true
}
