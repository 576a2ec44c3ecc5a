// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics facade.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	AllowsLoops bool // self-loop policy
	VertexCount int  // |V|
	EdgeCount   int  // |E|
	LoopCount   int  // edges with From == To
	Isolated    int  // vertices with no neighbor at all
}

// Stats produces a deterministic snapshot of flags and counts.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags and vertex count.
//   - Stage 2: Acquire muEdgeAdj.RLock, count edges, loops and isolated vertices.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	stats := GraphStats{
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	stats.EdgeCount = len(g.edges)
	var e *Edge
	for _, e = range g.edges {
		if e.From == e.To {
			stats.LoopCount++
		}
	}
	for id := range g.vertices {
		if len(g.adjacency[id]) == 0 {
			stats.Isolated++
		}
	}

	return &stats
}
