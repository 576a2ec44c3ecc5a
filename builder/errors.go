// SPDX-License-Identifier: MIT
// Package: conformity/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Implementations attach context using %w ("Path: n=1 < min=2: ...").
//   • Constructors never panic; validation panics are confined to WithX options.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates construction could not proceed (nil graph,
// nil constructor, nil assigner).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrNoValues indicates an attribute assigner was given an empty value pool.
var ErrNoValues = errors.New("builder: empty value pool")
