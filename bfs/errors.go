package bfs

import "errors"

var (
	// ErrGraphNil is returned for a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation wraps every rejected Option (see WithMaxDepth).
	ErrOptionViolation = errors.New("bfs: invalid option")

	// ErrNeighbors wraps a failed neighbor lookup during the walk.
	ErrNeighbors = errors.New("bfs: neighbor lookup failed")
)
