package conformity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conformity/builder"
	"github.com/katalvlaran/conformity/core"
	"github.com/katalvlaran/conformity/view"
)

// graphOf builds a view from an edge list and per-vertex attributes.
func graphOf(t testing.TB, edges [][2]string, attrs map[string]core.Attributes) *view.Core {
	t.Helper()
	g := core.NewGraph()
	for id, a := range attrs {
		require.NoError(t, g.AddVertexWithAttributes(id, a))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	return view.NewCore(g)
}

// karate returns the karate club with two constant extra labels.
func karate(t testing.TB) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil,
		builder.KarateClub(),
		builder.AssignConst("pippo", "si"),
		builder.AssignConst("topolino", "op"),
	)
	require.NoError(t, err)
	return g
}

// fakeView is a hand-wired GraphView for inconsistent or degenerate inputs.
type fakeView struct {
	nodes     []string
	neighbors map[string][]string
	attrs     map[string]core.Attributes
	connected bool
	dist      map[string]map[string]int
}

func (f *fakeView) Nodes() []string { return f.nodes }

func (f *fakeView) Neighbors(v string) ([]string, error) { return f.neighbors[v], nil }

func (f *fakeView) Attribute(v, label string) (string, error) { return f.attrs[v].Get(v, label) }

func (f *fakeView) IsConnected() (bool, error) { return f.connected, nil }

func (f *fakeView) ShortestPathLengths(source string) (map[string]int, error) {
	return f.dist[source], nil
}
