package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/conformity/core"
)

type entry struct {
	id    string
	depth int
}

// walker owns the mutable state of one BFS run. The queue is consumed by
// advancing head, so the backing array is allocated once.
type walker struct {
	g    *core.Graph
	o    Options
	ctx  context.Context
	q    []entry
	head int
	res  *BFSResult
}

// BFS walks g breadth-first from startID. Neighbors are expanded in
// ascending ID order, so Order is deterministic for a given graph.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound,
// ErrNeighbors, the context error, or a wrapped OnVisit error. The partial
// result is returned alongside walk-time errors.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		g:   g,
		o:   o,
		ctx: o.Ctx,
		q:   make([]entry, 0, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.discover(startID, "", 0)

	return w.res, w.run()
}

// discover records id at depth d and queues it. The Depth map doubles as
// the seen-set.
func (w *walker) discover(id, parent string, d int) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.o.OnEnqueue(id, d)
	w.q = append(w.q, entry{id: id, depth: d})
}

func (w *walker) run() error {
	for w.head < len(w.q) {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		cur := w.q[w.head]
		w.head++
		w.o.OnDequeue(cur.id, cur.depth)

		w.res.Order = append(w.res.Order, cur.id)
		if err := w.o.OnVisit(cur.id, cur.depth); err != nil {
			return fmt.Errorf("bfs: visit %q: %w", cur.id, err)
		}
		if w.o.MaxDepth > 0 && cur.depth >= w.o.MaxDepth {
			continue
		}
		if err := w.expand(cur); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) expand(cur entry) error {
	nbrs, err := w.g.NeighborIDs(cur.id)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrNeighbors, cur.id, err)
	}
	for _, nbr := range nbrs {
		if err = w.ctx.Err(); err != nil {
			return err
		}
		if _, seen := w.res.Depth[nbr]; seen || !w.o.FilterNeighbor(cur.id, nbr) {
			continue
		}
		w.discover(nbr, cur.id, cur.depth+1)
	}

	return nil
}
