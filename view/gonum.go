// SPDX-License-Identifier: MIT

package view

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/katalvlaran/conformity/core"
)

// Gonum exposes a gonum undirected graph as a conformity graph view.
// Node names are the decimal node IDs unless WithNames supplies others.
// Attributes are looked up in the table passed to NewGonum by node ID.
type Gonum struct {
	g     graph.Undirected
	attrs map[int64]core.Attributes
	names map[int64]string
	ids   map[string]int64
}

// GonumOption configures a Gonum view.
type GonumOption func(*Gonum)

// WithNames maps gonum node IDs to external names. IDs absent from names
// keep their decimal form.
func WithNames(names map[int64]string) GonumOption {
	return func(v *Gonum) {
		for id, name := range names {
			v.names[id] = name
		}
	}
}

// NewGonum wraps g with per-node attributes keyed by node ID.
// The attribute table is used as is; callers must not mutate it during a run.
//
// Errors: ErrDuplicateName when two nodes share a name, either through
// WithNames or because a supplied name equals another node's decimal ID.
func NewGonum(g graph.Undirected, attrs map[int64]core.Attributes, opts ...GonumOption) (*Gonum, error) {
	v := &Gonum{
		g:     g,
		attrs: attrs,
		names: make(map[int64]string),
		ids:   make(map[string]int64),
	}
	for _, opt := range opts {
		opt(v)
	}
	if g != nil {
		nodes := g.Nodes()
		for nodes.Next() {
			id := nodes.Node().ID()
			name := v.name(id)
			if other, dup := v.ids[name]; dup {
				return nil, fmt.Errorf("%w: %q names nodes %d and %d",
					ErrDuplicateName, name, min(id, other), max(id, other))
			}
			v.ids[name] = id
		}
	}

	return v, nil
}

func (v *Gonum) name(id int64) string {
	if n, ok := v.names[id]; ok {
		return n
	}

	return strconv.FormatInt(id, 10)
}

func (v *Gonum) lookup(name string) (int64, error) {
	id, ok := v.ids[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}

	return id, nil
}

// Nodes returns all node names in lexicographic order.
func (v *Gonum) Nodes() []string {
	out := make([]string, 0, len(v.ids))
	for name := range v.ids {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Neighbors returns the sorted names of the nodes adjacent to name.
func (v *Gonum) Neighbors(name string) ([]string, error) {
	if v.g == nil {
		return nil, ErrNilGraph
	}
	id, err := v.lookup(name)
	if err != nil {
		return nil, err
	}
	it := v.g.From(id)
	out := make([]string, 0, it.Len())
	for it.Next() {
		out = append(out, v.name(it.Node().ID()))
	}
	sort.Strings(out)

	return out, nil
}

// Attribute returns the value of label on node name.
func (v *Gonum) Attribute(name, label string) (string, error) {
	id, err := v.lookup(name)
	if err != nil {
		return "", err
	}

	return v.attrs[id].Get(name, label)
}

// IsConnected reports whether the graph is one connected component.
// The empty graph is not connected.
func (v *Gonum) IsConnected() (bool, error) {
	if v.g == nil {
		return false, ErrNilGraph
	}
	if len(v.ids) == 0 {
		return false, nil
	}

	return len(topo.ConnectedComponents(v.g)) == 1, nil
}

// ShortestPathLengths returns hop distances from source to every node
// reachable from it, source included at distance 0.
func (v *Gonum) ShortestPathLengths(source string) (map[string]int, error) {
	if v.g == nil {
		return nil, ErrNilGraph
	}
	id, err := v.lookup(source)
	if err != nil {
		return nil, err
	}

	dist := make(map[string]int)
	var bf traverse.BreadthFirst
	bf.Walk(v.g, v.g.Node(id), func(n graph.Node, d int) bool {
		dist[v.name(n.ID())] = d
		return false
	})

	return dist, nil
}

// GonumFromCore copies g into a gonum simple.UndirectedGraph and returns a
// view over it. Node IDs are assigned in sorted vertex order and named after
// the original vertex IDs, so both views report identical node names.
//
// Errors: ErrNilGraph, ErrSelfLoop when g contains a loop.
func GonumFromCore(g *core.Graph) (*Gonum, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	sg := simple.NewUndirectedGraph()
	vertices := g.Vertices()
	index := make(map[string]int64, len(vertices))
	names := make(map[int64]string, len(vertices))
	attrs := make(map[int64]core.Attributes, len(vertices))
	for i, id := range vertices {
		nid := int64(i)
		index[id] = nid
		names[nid] = id
		sg.AddNode(simple.Node(nid))
		a, err := g.Attributes(id)
		if err != nil {
			return nil, fmt.Errorf("view: attributes of %q: %w", id, err)
		}
		attrs[nid] = a
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			return nil, fmt.Errorf("%w: vertex %q", ErrSelfLoop, e.From)
		}
		sg.SetEdge(simple.Edge{F: simple.Node(index[e.From]), T: simple.Node(index[e.To])})
	}

	return NewGonum(sg, attrs, WithNames(names))
}
