// SPDX-License-Identifier: MIT
// Package: conformity/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); K_1 is a single isolated vertex.
//   • Adds vertices via cfg.idFn in ascending index order.
//   • Emits each unordered pair {i,j}, i<j, in lexicographic (i,j) order.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges.
//   • Space: O(n) for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/conformity/core"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodComplete, ids[i], err)
			}
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err := g.AddEdge(ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", MethodComplete, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}
