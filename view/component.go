package view

import (
	"fmt"

	"github.com/katalvlaran/conformity/bfs"
	"github.com/katalvlaran/conformity/core"
)

// LargestComponent returns the subgraph induced by g's largest connected
// component, with attributes copied. Ties go to the component holding the
// smallest vertex ID. An empty graph yields an empty graph.
//
// Complexity: O(V + E).
func LargestComponent(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	comps, err := bfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("view: components: %w", err)
	}

	keep := make(map[string]bool)
	best := -1
	for i, c := range comps {
		if best < 0 || len(c) > len(comps[best]) {
			best = i
		}
	}
	if best >= 0 {
		for _, id := range comps[best] {
			keep[id] = true
		}
	}

	return core.InducedSubgraph(g, keep), nil
}
