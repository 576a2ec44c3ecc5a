package conformity

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Option configures Compute via functional arguments.
type Option func(*options)

// options holds the resolved engine configuration.
type options struct {
	workers  int
	observer Observer
	logger   *slog.Logger
	policy   FactorPolicy
	err      error
}

// defaultOptions returns:
//   - workers = GOMAXPROCS
//   - a no-op observer
//   - a discarding logger
//   - FactorLastLabel
func defaultOptions() options {
	return options{
		workers:  runtime.GOMAXPROCS(0),
		observer: nopObserver{},
		logger:   slog.New(slog.DiscardHandler),
		policy:   FactorLastLabel,
	}
}

// WithWorkers bounds the number of nodes scored concurrently.
// Zero keeps the default (GOMAXPROCS); negative values are rejected.
func WithWorkers(n int) Option {
	return func(o *options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrInvalidParameter, n)
		case n > 0:
			o.workers = n
		}
	}
}

// WithObserver registers o to be told after each node completes.
// A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFactorPolicy selects how per-label adjacency factors weight each label.
func WithFactorPolicy(p FactorPolicy) Option {
	return func(o *options) {
		if !p.valid() {
			o.err = fmt.Errorf("%w: unknown factor policy %d", ErrInvalidParameter, int(p))
			return
		}
		o.policy = p
	}
}
