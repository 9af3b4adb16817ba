// Package core defines the central bipartite Graph and Edge types and the
// thread-safe primitives for building and querying them.
//
// Vertices are dense integers. A graph built for partitions of size n and m
// owns vertices 0..n+m-1: ids 0..n-1 form side A and ids n..n+m-1 form side B.
// Partition labels are fixed at construction time, before any edge exists,
// and every edge must join the two sides.
//
// All core APIs share one sync.RWMutex (mu), so graphs may be read from many
// goroutines while a single builder goroutine mutates them.
//
// Errors:
//
//	ErrBadPartition        - negative partition size.
//	ErrVertexNotFound      - vertex id outside 0..n+m-1.
//	ErrSamePartition       - edge endpoints lie on the same side.
//	ErrMultiEdgeNotAllowed - the same directed (or undirected) pair was added twice.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadPartition indicates a negative partition size was requested.
	ErrBadPartition = errors.New("core: partition size must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSamePartition indicates both endpoints of an edge belong to the same side.
	ErrSamePartition = errors.New("core: edge endpoints in the same partition")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Side labels the partition a vertex belongs to.
// The numeric values match the conventional "bipartite" node attribute.
type Side uint8

const (
	// SideA is the "n-side" partition (ids 0..n-1).
	SideA Side = 0
	// SideB is the "m-side" partition (ids n..n+m-1).
	SideB Side = 1
)

// String returns "A" or "B".
func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}

// Edge is a connection between an A vertex and a B vertex.
//
// In undirected graphs From is always the A endpoint. In directed graphs the
// orientation is kept as inserted, so From may be a B vertex.
type Edge struct {
	From int
	To   int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or symmetric (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithName attaches a human-readable name to the graph.
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// Graph is an in-memory bipartite graph over integer vertex ids.
//
// out[v] holds the successors of v (all neighbours when undirected);
// in[v] holds predecessors and is only allocated for directed graphs.
type Graph struct {
	mu sync.RWMutex // guards every field below

	directed bool
	name     string

	sizeA int // n
	sizeB int // m

	out       []map[int]struct{}
	in        []map[int]struct{}
	edgeCount int
}

// NewGraph creates an edgeless bipartite Graph with n vertices on side A and
// m vertices on side B. Partition labels are implied by the id ranges and are
// therefore set before any edge can be added.
// By default the Graph is undirected.
// Complexity: O(n+m).
func NewGraph(n, m int, opts ...GraphOption) (*Graph, error) {
	if n < 0 || m < 0 {
		return nil, ErrBadPartition
	}
	g := &Graph{sizeA: n, sizeB: m}
	for _, opt := range opts {
		opt(g)
	}

	// Inner sets are allocated lazily on first insertion; sparse graphs over
	// large partitions stay O(n+m) words.
	g.out = make([]map[int]struct{}, n+m)
	if g.directed {
		g.in = make([]map[int]struct{}, n+m)
	}

	return g, nil
}
