// SPDX-License-Identifier: MIT

package conformity

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Compute scores every node of g for every alpha and profile in cfg.
//
// Steps:
//  1. Validate: a non-empty, connected graph and a well-formed cfg.
//  2. Enumerate profiles of size 1..cfg.ProfileSize (see Profiles).
//  3. Snapshot attributes and compute adjacency factors (see NewScorer).
//  4. For every node u, in parallel: group nodes by hop distance from u,
//     score each distance class d ≥ 1 for every profile and accumulate
//     sim·d^-α; then divide by Σ d^-α over d = 1..ecc(u).
//
// A single-node graph scores 0 everywhere. The run is all-or-nothing: any
// error returns a nil Result. Cancelling ctx stops scheduling new nodes and
// returns ctx's error.
//
// Complexity: O(V·(V+E) + V²·P·L) time for P profiles of at most L labels.
func Compute(ctx context.Context, g GraphView, cfg Config, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	if len(g.Nodes()) == 0 {
		return nil, ErrEmptyGraph
	}
	connected, err := g.IsConnected()
	if err != nil {
		return nil, fmt.Errorf("conformity: connectivity: %w", err)
	}
	if !connected {
		return nil, ErrDisconnectedGraph
	}
	cfg, err = cfg.normalize()
	if err != nil {
		return nil, err
	}
	profiles, err := Profiles(cfg.Labels, cfg.ProfileSize)
	if err != nil {
		return nil, err
	}
	sc, err := NewScorer(g, cfg.Labels, cfg.Hierarchies, o.policy)
	if err != nil {
		return nil, err
	}

	e := &engine{
		g:        g,
		sc:       sc,
		profiles: make([][]int, len(profiles)),
		decay:    newDecay(cfg.Alphas, len(sc.nodes)-1),
		res:      newResult(cfg.Alphas, profiles, sc.Nodes()),
		observer: o.observer,
	}
	for p, prof := range profiles {
		e.profiles[p], _ = sc.profileIndex(prof)
	}

	start := time.Now()
	o.logger.DebugContext(ctx, "conformity run started",
		"nodes", len(sc.nodes),
		"alphas", len(cfg.Alphas),
		"profiles", len(profiles),
		"workers", o.workers,
		"policy", o.policy.String())

	if err := e.run(ctx, o.workers); err != nil {
		o.logger.DebugContext(ctx, "conformity run aborted", "error", err)
		return nil, err
	}

	o.logger.DebugContext(ctx, "conformity run finished", "elapsed", time.Since(start))

	return e.res, nil
}

// engine carries the shared read-only state of one run plus the result
// being filled. Workers write only to their own node's cells.
type engine struct {
	g        GraphView
	sc       *Scorer
	profiles [][]int
	decay    decay
	res      *Result

	mu       sync.Mutex
	done     int
	observer Observer
}

// run fans nodes out to at most workers goroutines.
func (e *engine) run(ctx context.Context, workers int) error {
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	var stopped error
	for i := range e.sc.nodes {
		if err := gctx.Err(); err != nil {
			stopped = err
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := e.node(i); err != nil {
				return fmt.Errorf("conformity: node %q: %w", e.sc.nodes[i], err)
			}
			e.markDone(i)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	if stopped != nil {
		// gctx is only cancelled without a worker error when ctx itself is.
		return ctx.Err()
	}

	return nil
}

// markDone reports node i to the observer, one call at a time.
func (e *engine) markDone(i int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.done++
	e.observer.NodeDone(e.sc.nodes[i], e.done, len(e.sc.nodes))
}

// node scores node u for every alpha and profile.
func (e *engine) node(u int) error {
	classes, err := e.distanceClasses(u)
	if err != nil {
		return err
	}
	ecc := len(classes) - 1
	if ecc == 0 {
		// Lone node: no distance class to compare against.
		return nil
	}

	nA, nP := len(e.decay.weights), len(e.profiles)
	acc := make([]float64, nA*nP)
	for d := 1; d <= ecc; d++ {
		for p, prof := range e.profiles {
			sim := e.sc.score(u, classes[d], prof)
			for a := 0; a < nA; a++ {
				acc[a*nP+p] += sim * e.decay.weights[a][d]
			}
		}
	}
	for a := 0; a < nA; a++ {
		norm := e.decay.norms[a][ecc]
		for p := 0; p < nP; p++ {
			e.res.scores[a][p][u] = acc[a*nP+p] / norm
		}
	}

	return nil
}

// distanceClasses groups node indices by hop distance from u; classes[d]
// is sorted and classes[0] is {u}. Every node must be reachable.
func (e *engine) distanceClasses(u int) ([][]int, error) {
	n := len(e.sc.nodes)
	dist, err := e.g.ShortestPathLengths(e.sc.nodes[u])
	if err != nil {
		return nil, fmt.Errorf("shortest paths: %w", err)
	}
	if len(dist) != n {
		return nil, fmt.Errorf("%w: %d of %d nodes reachable", ErrDisconnectedGraph, len(dist), n)
	}

	ecc := 0
	idx := make([]int, n)
	depth := make([]int, n)
	k := 0
	for name, d := range dist {
		j, ok := e.sc.index[name]
		if !ok || d < 0 || d >= n || (d == 0) != (j == u) {
			return nil, fmt.Errorf("%w: distance %d to %q", ErrInconsistentView, d, name)
		}
		idx[k], depth[k] = j, d
		ecc = max(ecc, d)
		k++
	}

	classes := make([][]int, ecc+1)
	for k := range idx {
		classes[depth[k]] = append(classes[depth[k]], idx[k])
	}
	for d, c := range classes {
		if len(c) == 0 {
			return nil, fmt.Errorf("%w: no node at distance %d", ErrInconsistentView, d)
		}
		sort.Ints(c)
	}

	return classes, nil
}

// decay holds d^-α for d = 1..maxDist and its running sums, per alpha.
// The same weights, summed in ascending d, are used to accumulate and to
// normalise, so a similarity of exactly 1 at every distance scores exactly 1.
type decay struct {
	weights [][]float64 // [alpha][d], index 0 unused
	norms   [][]float64 // [alpha][d] = Σ_{k=1..d} weights[alpha][k]
}

func newDecay(alphas []float64, maxDist int) decay {
	dc := decay{
		weights: make([][]float64, len(alphas)),
		norms:   make([][]float64, len(alphas)),
	}
	for a, alpha := range alphas {
		w := make([]float64, maxDist+1)
		s := make([]float64, maxDist+1)
		for d := 1; d <= maxDist; d++ {
			w[d] = math.Pow(float64(d), -alpha)
			s[d] = s[d-1] + w[d]
		}
		dc.weights[a], dc.norms[a] = w, s
	}

	return dc
}
