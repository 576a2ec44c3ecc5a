// SPDX-License-Identifier: MIT

package view

import (
	"fmt"

	"github.com/katalvlaran/conformity/bfs"
	"github.com/katalvlaran/conformity/core"
)

// Core exposes a *core.Graph as a conformity graph view.
type Core struct {
	g *core.Graph
}

// NewCore wraps g. A nil g yields a view whose methods return ErrNilGraph.
func NewCore(g *core.Graph) *Core {
	return &Core{g: g}
}

// Graph returns the wrapped graph.
func (c *Core) Graph() *core.Graph { return c.g }

// Nodes returns all vertex IDs in lexicographic order.
func (c *Core) Nodes() []string {
	if c.g == nil {
		return nil
	}

	return c.g.Vertices()
}

// Neighbors returns the sorted neighbor IDs of v. A looped vertex lists itself.
func (c *Core) Neighbors(v string) ([]string, error) {
	if c.g == nil {
		return nil, ErrNilGraph
	}
	ids, err := c.g.NeighborIDs(v)
	if err != nil {
		return nil, fmt.Errorf("view: neighbors of %q: %w", v, err)
	}

	return ids, nil
}

// Attribute returns v's value for label. A missing label yields a
// *core.MissingAttributeError.
func (c *Core) Attribute(v, label string) (string, error) {
	if c.g == nil {
		return "", ErrNilGraph
	}

	return c.g.Attribute(v, label)
}

// IsConnected reports whether the graph is one connected component.
func (c *Core) IsConnected() (bool, error) {
	if c.g == nil {
		return false, ErrNilGraph
	}

	return bfs.IsConnected(c.g)
}

// ShortestPathLengths returns the hop distance from source to every vertex
// reachable from it, source included at distance 0.
func (c *Core) ShortestPathLengths(source string) (map[string]int, error) {
	if c.g == nil {
		return nil, ErrNilGraph
	}
	res, err := bfs.BFS(c.g, source)
	if err != nil {
		return nil, fmt.Errorf("view: shortest paths from %q: %w", source, err)
	}

	return res.Depth, nil
}
