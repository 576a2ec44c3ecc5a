// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by Edge.ID creation order.
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// Neighbors returns all edges incident to id, sorted by creation order.
// A self-loop appears once.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, len(g.adjacency[id]))
	var e *Edge
	for _, eid := range g.adjacency[id] {
		if e = g.edges[eid]; e.IsNil() {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs adjacent to id, sorted
// lexicographically ascending. A looped vertex lists itself.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	ids := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		ids = append(ids, nbr)
	}
	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList returns a snapshot mapping each vertex to its sorted neighbor IDs.
// Returned slices are freshly allocated; map key order is not deterministic,
// so iterate Vertices() when order matters.
//
// Complexity:
//   - Time O(V + E log E), Space O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	result := make(map[string][]string, len(g.adjacency))
	for from, toMap := range g.adjacency {
		buf := make([]string, 0, len(toMap))
		for to := range toMap {
			buf = append(buf, to)
		}
		sort.Strings(buf)
		result[from] = buf
	}

	return result
}

// ensureAdjacency guarantees that adjacency[id] is initialized.
// Must be called ONLY under the muEdgeAdj write lock.
func ensureAdjacency(g *Graph, id string) {
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]string)
	}
}

// removeAdjacency unlinks e from both endpoint buckets.
// Must be called ONLY under the muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacency[e.From]; m != nil && m[e.To] == e.ID {
		delete(m, e.To)
	}
	if m := g.adjacency[e.To]; m != nil && m[e.From] == e.ID {
		delete(m, e.From)
	}
}
