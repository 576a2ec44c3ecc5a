// Package core defines the central Graph, Vertex, and Edge types used by the
// conformity algorithm, and provides thread-safe primitives for building and
// querying undirected, attributed graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices
// and their attributes, muEdgeAdj for edges and adjacency), so graphs can be
// read from many goroutines at once while scores are being computed.
//
// Errors:
//
//	ErrEmptyVertexID     - vertex ID is the empty string.
//	ErrEmptyLabel        - attribute label is the empty string.
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrEdgeNotFound      - requested edge does not exist.
//	ErrLoopNotAllowed    - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - a second edge between the same endpoints.
//	ErrMissingAttribute  - vertex carries no value for the requested label.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrEmptyLabel indicates that an attribute label is empty.
	ErrEmptyLabel = errors.New("core: attribute label is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Attrs holds its categorical attribute profile.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Attrs maps attribute label to categorical value.
	Attrs Attributes
}

// Edge represents an undirected connection between two vertices.
// Edges carry no payload; From/To only record insertion orientation.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string
}

// IsNil reports whether the receiver is nil.
func (e *Edge) IsNil() bool { return e == nil }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
// A looped vertex is reported as its own neighbor.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an undirected, unweighted, attributed simple graph
// (optionally with self-loops).
//
// muVert protects vertices and attributes; muEdgeAdj protects edges and adjacency.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	allowLoops bool // allow self-loops

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[u][v] = Edge.ID, mirrored for v→u.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph disallows self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}
