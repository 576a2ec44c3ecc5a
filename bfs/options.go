package bfs

import (
	"context"
	"fmt"
)

// Option mutates Options. Invalid arguments are remembered and reported by
// BFS as ErrOptionViolation, so options never panic.
type Option func(*Options)

// Options tunes a single BFS run. Zero-valued hooks are replaced by no-ops in
// DefaultOptions, so the walker never checks for nil.
type Options struct {
	Ctx context.Context

	// OnEnqueue fires when a vertex is discovered and queued.
	OnEnqueue func(id string, depth int)
	// OnDequeue fires when a vertex leaves the queue, just before OnVisit.
	OnDequeue func(id string, depth int)
	// OnVisit fires once per reached vertex; a non-nil error aborts the walk.
	OnVisit func(id string, depth int) error

	// MaxDepth > 0 stops discovery past that many hops. 0 means unlimited.
	MaxDepth int

	// FilterNeighbor returning false hides the edge curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns a background context, no depth limit, no filter and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(string, string) bool { return true },
	}
}

// WithContext makes the walk observe ctx. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue installs the discovery hook.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue installs the dequeue hook.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit installs the visit hook. Its error is returned by BFS wrapped
// with the offending vertex ID.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the walk to d hops from the start. d == 0 lifts the
// bound; d < 0 is rejected.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: max depth %d is negative", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs an edge predicate.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
