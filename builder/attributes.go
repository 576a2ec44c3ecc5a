// SPDX-License-Identifier: MIT
// Package: conformity/builder
//
// attributes.go - attribute assigners.
//
// Contract:
//   • Assigners label vertices already in the graph; run them after topology
//     constructors.
//   • Vertices are visited in g.Vertices() order (lexicographic), and idx is
//     the position in that order, so results are deterministic.
//   • An existing value for the label is overwritten.

package builder

import (
	"fmt"

	"github.com/katalvlaran/conformity/core"
)

// ValueFn computes the value of a label for vertex id at position idx.
type ValueFn func(id string, idx int) string

// Assign sets label on every vertex to fn(id, idx).
// Errors: core.ErrEmptyLabel, ErrConstructFailed on nil fn.
func Assign(label string, fn ValueFn) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if fn == nil {
			return fmt.Errorf("%s(%q): nil value function: %w", MethodAssign, label, ErrConstructFailed)
		}

		return assignEach(g, label, fn)
	}
}

// AssignConst sets label to the same value on every vertex.
func AssignConst(label, value string) Constructor {
	return Assign(label, func(string, int) string { return value })
}

// AssignCycle deals values round-robin over the sorted vertices:
// vertex idx receives values[idx % len(values)].
func AssignCycle(label string, values ...string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if len(values) == 0 {
			return fmt.Errorf("%s(%q): %w", MethodAssign, label, ErrNoValues)
		}

		return assignEach(g, label, func(_ string, idx int) string { return values[idx%len(values)] })
	}
}

// AssignRandom draws each vertex's value uniformly from values using the
// configured RNG (WithSeed/WithRand). One rng.Intn draw per vertex.
func AssignRandom(label string, values ...string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(values) == 0 {
			return fmt.Errorf("%s(%q): %w", MethodAssign, label, ErrNoValues)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s(%q): %w", MethodAssign, label, ErrNeedRandSource)
		}
		rng := cfg.rng

		return assignEach(g, label, func(string, int) string { return values[rng.Intn(len(values))] })
	}
}

func assignEach(g *core.Graph, label string, fn ValueFn) error {
	for idx, id := range g.Vertices() {
		if err := g.SetAttribute(id, label, fn(id, idx)); err != nil {
			return fmt.Errorf("%s(%q): vertex %s: %w", MethodAssign, label, id, err)
		}
	}

	return nil
}
