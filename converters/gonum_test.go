package converters_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/bimatch/builder"
	"github.com/katalvlaran/bimatch/converters"
	"github.com/katalvlaran/bimatch/core"
)

func TestToGonum_Undirected(t *testing.T) {
	t.Parallel()

	g, err := builder.Generate(20, 30, 0.2, false, builder.WithSeed(4))
	require.NoError(t, err)

	ug, err := converters.ToGonumUndirected(g)
	require.NoError(t, err)
	require.Equal(t, 50, ug.Nodes().Len())
	require.Equal(t, g.EdgeCount(), ug.Edges().Len())
	for _, e := range g.Edges() {
		require.True(t, ug.HasEdgeBetween(int64(e.From), int64(e.To)))
	}

	// round trip
	back, err := converters.FromGonum(ug, 20, 30)
	require.NoError(t, err)
	require.False(t, back.Directed())
	if diff := cmp.Diff(g.Edges(), back.Edges()); diff != "" {
		t.Fatalf("round trip changed edges (-want +got):\n%s", diff)
	}
}

func TestToGonum_Directed(t *testing.T) {
	t.Parallel()

	g, err := builder.Generate(15, 15, 0.3, true, builder.WithSeed(6))
	require.NoError(t, err)

	gg, err := converters.ToGonum(g)
	require.NoError(t, err)
	dg, ok := gg.(*simple.DirectedGraph)
	require.True(t, ok, "directed core graph must map to a directed gonum graph")
	require.Equal(t, g.EdgeCount(), dg.Edges().Len())

	back, err := converters.FromGonum(dg, 15, 15)
	require.NoError(t, err)
	require.True(t, back.Directed())
	require.Equal(t, g.Edges(), back.Edges())
}

func TestToGonumDirected_FromUndirected(t *testing.T) {
	t.Parallel()

	g, err := builder.Generate(3, 2, 1, false)
	require.NoError(t, err)
	dg, err := converters.ToGonumDirected(g)
	require.NoError(t, err)
	require.Equal(t, 12, dg.Edges().Len())
	require.True(t, dg.HasEdgeFromTo(3, 0))
}

// TestToGonum_Components uses gonum to confirm the complete bipartite graph
// is connected and the empty one is not.
func TestToGonum_Components(t *testing.T) {
	t.Parallel()

	full, err := builder.Generate(4, 5, 1, false)
	require.NoError(t, err)
	ug, err := converters.ToGonumUndirected(full)
	require.NoError(t, err)
	require.Len(t, topo.ConnectedComponents(ug), 1)

	empty, err := builder.Generate(4, 5, 0, false)
	require.NoError(t, err)
	ug, err = converters.ToGonumUndirected(empty)
	require.NoError(t, err)
	require.Len(t, topo.ConnectedComponents(ug), 9)
}

func TestConverters_Errors(t *testing.T) {
	t.Parallel()

	_, err := converters.ToGonum(nil)
	require.True(t, errors.Is(err, converters.ErrNilGraph))
	_, err = converters.ToGonumDirected(nil)
	require.True(t, errors.Is(err, converters.ErrNilGraph))
	_, err = converters.FromGonum(nil, 1, 1)
	require.True(t, errors.Is(err, converters.ErrNilGraph))

	// same-side edge
	ug := simple.NewUndirectedGraph()
	ug.SetEdge(ug.NewEdge(simple.Node(0), simple.Node(1)))
	_, err = converters.FromGonum(ug, 2, 2)
	require.True(t, errors.Is(err, core.ErrSamePartition), "got %v", err)

	// out-of-range node
	dg := simple.NewDirectedGraph()
	dg.AddNode(simple.Node(9))
	_, err = converters.FromGonum(graph.Graph(dg), 2, 2)
	require.True(t, errors.Is(err, core.ErrVertexNotFound), "got %v", err)
}
