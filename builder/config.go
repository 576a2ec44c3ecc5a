// SPDX-License-Identifier: MIT
// Package: conformity/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn  ("0","1","2",...)
//   • rng      = nil          (pure/deterministic unless seeded)
//   • centerID = "Center"     (hub of Star)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices (RandomSparse, AssignRandom); nil means no randomness.
	rng *rand.Rand
	// Hub vertex ID for Star.
	centerID string
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		centerID: CenterVertexID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.centerID == "" {
		cfg.centerID = CenterVertexID
	}

	return cfg
}
