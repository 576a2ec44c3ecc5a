// SPDX-License-Identifier: MIT
// Package: conformity/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1) - i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/conformity/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, MethodPath, n); err != nil {
			return err
		}

		var uID, vID string
		for i := 1; i < n; i++ {
			uID, vID = cfg.idFn(i-1), cfg.idFn(i)
			if _, err := g.AddEdge(uID, vID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", MethodPath, uID, vID, err)
			}
		}

		return nil
	}
}

// addIndexedVertices inserts cfg.idFn(0..n-1) in ascending index order.
// Re-adding an existing vertex is a no-op in core.Graph.
func addIndexedVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	var id string
	for i := 0; i < n; i++ {
		id = cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}
