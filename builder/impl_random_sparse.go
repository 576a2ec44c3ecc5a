// SPDX-License-Identifier: MIT
// Package: conformity/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   - For 0 < p < 1 a seeded RNG is required (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//   - Trials run over unordered pairs {i,j}, i<j, in (i,j) ascending order,
//     one rng.Float64() draw per pair.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// The result is not necessarily connected; pair it with view.LargestComponent
// before scoring.

package builder

import (
	"fmt"

	"github.com/katalvlaran/conformity/core"
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi graph
// G(n, p) over n vertices.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomSparse, n, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		if err := addIndexedVertices(g, cfg, MethodRandomSparse, n); err != nil {
			return err
		}

		var u, v string
		for i := 0; i < n; i++ {
			u = cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				switch {
				case p == MinProbability:
					continue
				case p == MaxProbability:
				case rng.Float64() >= p:
					continue
				}
				v = cfg.idFn(j)
				if _, err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", MethodRandomSparse, u, v, err)
				}
			}
		}

		return nil
	}
}
