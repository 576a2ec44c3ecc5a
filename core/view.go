// File: view.go
// Role: Non-mutating graph views (cloning topology with a vertex filter).
// Determinism:
//   - Preserves vertex IDs, edge IDs and attribute profiles.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// Clone returns a deep copy of g: vertices, attributes, edges and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return InducedSubgraph(g, nil)
}

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. A nil keep keeps every vertex. The input graph is
// not mutated; attribute maps are copied.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	var opts []GraphOption
	if g.Looped() {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)
	kept := func(id string) bool { return keep == nil || keep[id] }

	g.muVert.RLock()
	var id string
	var v *Vertex
	for id, v = range g.vertices {
		if kept(id) {
			out.vertices[id] = &Vertex{ID: v.ID, Attrs: v.Attrs.Clone()}
			out.adjacency[id] = make(map[string]string)
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	// Carry the counter forward so later AddEdge calls never reuse historical IDs.
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if !kept(e.From) || !kept(e.To) {
			continue
		}
		out.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To}
		out.adjacency[e.From][e.To] = eid
		out.adjacency[e.To][e.From] = eid
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}
