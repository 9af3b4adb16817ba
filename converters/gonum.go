package converters

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/bimatch/core"
)

// ErrNilGraph is returned when a nil graph is passed to a converter.
var ErrNilGraph = errors.New("converters: nil graph")

// ToGonumUndirected copies every vertex and edge of g into a new
// simple.UndirectedGraph. Directed edges collapse onto one undirected edge.
// Complexity: O(V + E).
func ToGonumUndirected(g *core.Graph) (*simple.UndirectedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	dst := simple.NewUndirectedGraph()
	for _, v := range g.Vertices() {
		dst.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		dst.SetEdge(dst.NewEdge(simple.Node(e.From), simple.Node(e.To)))
	}
	return dst, nil
}

// ToGonumDirected copies g into a new simple.DirectedGraph. Undirected edges
// become a pair of opposite arcs.
// Complexity: O(V + E).
func ToGonumDirected(g *core.Graph) (*simple.DirectedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	dst := simple.NewDirectedGraph()
	for _, v := range g.Vertices() {
		dst.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		dst.SetEdge(dst.NewEdge(simple.Node(e.From), simple.Node(e.To)))
		if !g.Directed() {
			dst.SetEdge(dst.NewEdge(simple.Node(e.To), simple.Node(e.From)))
		}
	}
	return dst, nil
}

// ToGonum picks the gonum representation matching g.Directed().
func ToGonum(g *core.Graph) (graph.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() {
		return ToGonumDirected(g)
	}
	return ToGonumUndirected(g)
}

// FromGonum rebuilds a core.Graph with n A-vertices and m B-vertices from src.
// Node ids must lie in [0, n+m) and every edge must cross the partition.
// The result is directed iff src implements graph.Directed.
// Complexity: O(V + E).
func FromGonum(src graph.Graph, n, m int) (*core.Graph, error) {
	if src == nil {
		return nil, ErrNilGraph
	}
	_, directed := src.(graph.Directed)
	g, err := core.NewGraph(n, m, core.WithDirected(directed))
	if err != nil {
		return nil, fmt.Errorf("converters: %w", err)
	}

	nodes := src.Nodes()
	for nodes.Next() {
		u := nodes.Node().ID()
		if u < 0 || u >= int64(n+m) {
			return nil, fmt.Errorf("converters: node %d: %w", u, core.ErrVertexNotFound)
		}
		to := src.From(u)
		for to.Next() {
			v := to.Node().ID()
			// Undirected edges are visited from both ends; keep the lower one.
			if !directed && u > v {
				continue
			}
			if err = g.AddEdge(int(u), int(v)); err != nil {
				return nil, fmt.Errorf("converters: edge %d–%d: %w", u, v, err)
			}
		}
	}
	return g, nil
}
