// Package core provides a thread-safe in-memory undirected graph whose
// vertices carry categorical attribute profiles.
//
// The Graph G = (V,E) is the concrete storage behind the conformity
// algorithm's GraphView:
//
//   - Undirected, unweighted edges; parallel edges are rejected.
//   - Optional self-loops (WithLoops); a looped vertex is its own neighbor.
//   - Each Vertex carries Attributes: label → categorical value.
//   - Constant-time adjacency via nested maps: adjacency[u][v] = edgeID.
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Core Methods:
//
//	// Vertex lifecycle & attributes
//	AddVertex(id string) error                                  // O(1)
//	AddVertexWithAttributes(id string, attrs Attributes) error  // O(|attrs|)
//	SetAttribute(id, label, value string) error                 // O(1)
//	Attribute(id, label string) (string, error)                 // O(1)
//	RemoveVertex(id string) error                               // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string) (edgeID string, err error)         // O(1)
//	RemoveEdge(edgeID string) error                             // O(1)
//	HasEdge(from, to string) bool                               // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error) // unique, sorted
//	Vertices() []string                      // sorted
//	Edges() []*Edge                          // creation order
//	Degree(id string) (int, error)
//	Stats() *GraphStats
//
//	// Views
//	Clone() *Graph
//	InducedSubgraph(g, keep) *Graph
//
// Errors:
//
//	ErrEmptyVertexID, ErrEmptyLabel, ErrVertexNotFound, ErrEdgeNotFound,
//	ErrLoopNotAllowed, ErrMultiEdgeNotAllowed, ErrMissingAttribute
//	(the latter carried by *MissingAttributeError).
package core
