// Package bfs runs breadth-first search over a core.Graph and groups the
// result into hop-distance layers.
//
// A BFSResult records the visit Order, the Depth (hop count) of every
// reached vertex and its Parent in the BFS tree. Layers() regroups Depth
// into distance classes, which is exactly the grouping the conformity score
// walks; Eccentricity() is the deepest layer. Components() and IsConnected()
// partition a graph by repeated BFS.
//
// Determinism:
//
//	core.NeighborIDs returns neighbors sorted by ID and BFS enqueues them in
//	that order, so Order, Parent and every layer are reproducible.
//
// Complexity: O(V + E) time and O(V) memory per search.
//
// Options:
//
//   - WithContext(ctx):        cancel between dequeues and neighbor expansions.
//   - WithMaxDepth(d):         stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):  skip edges for which fn(curr, neighbor) is false.
//   - WithOnEnqueue(fn), WithOnDequeue(fn): observation hooks.
//   - WithOnVisit(fn):         visit hook; a returned error aborts the search.
//
// Errors:
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      for an invalid option (e.g. negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails.
//   - Hook errors from OnVisit, wrapped.
//
// Usage:
//
//	res, err := bfs.BFS(g, "a", bfs.WithContext(ctx))
//	if err != nil {
//		return err
//	}
//	for d, layer := range res.Layers() {
//		fmt.Println(d, layer)
//	}
package bfs
