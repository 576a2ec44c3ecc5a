// SPDX-License-Identifier: MIT
// Package: conformity/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds the hub with ID cfg.centerID ("Center" unless WithCenterID).
//   - Adds leaves via cfg.idFn in ascending index order for i = 1..n-1.
//   - Emits spokes in stable order Center - leaf[i].
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/conformity/core"
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub and n-1 leaves. Every leaf has a single neighbor, which makes the
// star the smallest graph where leaf and hub neighborhoods differ sharply.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		hub := cfg.centerID
		if err := g.AddVertex(hub); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", MethodStar, hub, err)
		}

		var leafID string
		for i := 1; i < n; i++ {
			leafID = cfg.idFn(i)
			if err := g.AddVertex(leafID); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodStar, leafID, err)
			}
			if _, err := g.AddEdge(hub, leafID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", MethodStar, hub, leafID, err)
			}
		}

		return nil
	}
}
