package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/conformity/core"
)

// Components returns the connected components of g. Each component is sorted
// ascending and components are ordered by their smallest vertex ID, so the
// output is fully deterministic.
//
// Time:   O(V + E·log d) (one BFS per component over sorted neighbor lists).
// Memory: O(V).
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	var comps [][]string

	// Vertices() is sorted, so each component is discovered from its minimum.
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return nil, fmt.Errorf("bfs: component of %q: %w", v, err)
		}
		comp := append([]string(nil), res.Order...)
		for _, id := range comp {
			seen[id] = true
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// IsConnected reports whether g is a single connected component.
// The empty graph is not connected.
func IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	n := g.VertexCount()
	if n == 0 {
		return false, nil
	}
	res, err := BFS(g, g.Vertices()[0])
	if err != nil {
		return false, err
	}

	return len(res.Order) == n, nil
}
