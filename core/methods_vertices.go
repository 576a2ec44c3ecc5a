// File: methods_vertices.go
// Role: Vertex lifecycle, attribute access & vertex queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog and attributes protected by muVert.
//   - Adjacency bootstrap and incident-edge removal under muEdgeAdj.
//   - Lock order is always muVert -> muEdgeAdj.
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Behavior highlights:
//   - Adding an existing vertex is a no-op and keeps its attributes.
//   - Initializes Attrs to a non-nil map.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Attrs: make(Attributes)}

	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// AddVertexWithAttributes inserts (or updates) a vertex and merges attrs into
// its attribute profile. The caller's map is copied, never retained.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrEmptyLabel: if attrs contains an empty label.
//
// Complexity:
//   - Time O(|attrs|), Space O(|attrs|).
func (g *Graph) AddVertexWithAttributes(id string, attrs Attributes) error {
	for label := range attrs {
		if label == "" {
			return ErrEmptyLabel
		}
	}
	if err := g.AddVertex(id); err != nil {
		return err
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	v := g.vertices[id]
	for label, value := range attrs {
		v.Attrs[label] = value
	}

	return nil
}

// SetAttribute assigns value to label on an existing vertex.
//
// Errors:
//   - ErrEmptyVertexID, ErrEmptyLabel on invalid input.
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(1).
func (g *Graph) SetAttribute(id, label, value string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if label == "" {
		return ErrEmptyLabel
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Attrs[label] = value

	return nil
}

// Attribute returns the value of label on vertex id.
//
// Errors:
//   - ErrVertexNotFound if the vertex does not exist.
//   - *MissingAttributeError (matches ErrMissingAttribute) if the label is absent.
//
// Complexity: O(1).
func (g *Graph) Attribute(id, label string) (string, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return "", ErrVertexNotFound
	}

	return v.Attrs.Get(id, label)
}

// Attributes returns a copy of the attribute profile of vertex id.
//
// Errors:
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(|attrs|).
func (g *Graph) Attributes(id string) (Attributes, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v.Attrs.Clone(), nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(deg(v)), Space O(1) extra.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	for nbr, eid := range g.adjacency[id] {
		delete(g.edges, eid)
		delete(g.adjacency[nbr], id)
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
//
// Determinism:
//   - Stable enumeration surface; higher-level algorithms rely on it
//     for reproducible outputs.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of distinct neighbors of id.
// A self-loop counts once (the vertex is its own neighbor).
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adjacency[id]), nil
}
