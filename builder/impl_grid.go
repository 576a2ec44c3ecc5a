// SPDX-License-Identifier: MIT
// Package: conformity/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex IDs use the fixed coordinate scheme "r,c" (cfg.idFn is ignored).
//   • Vertices are added row-major; for each (r,c) the Right edge is emitted
//     before the Bottom edge.
//
// Complexity:
//   • Time: O(rows*cols) vertices + O(rows*cols) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/conformity/core"
)

const gridIDFmt = "%d,%d"

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
// Grids have large diameters, which makes them useful for exercising the
// long-distance tail of the conformity weighting.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", MethodGrid, id, err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					v := fmt.Sprintf(gridIDFmt, r, c+1)
					if _, err := g.AddEdge(u, v); err != nil {
						return fmt.Errorf("%s: AddEdge(%s-%s): %w", MethodGrid, u, v, err)
					}
				}
				if r+1 < rows {
					v := fmt.Sprintf(gridIDFmt, r+1, c)
					if _, err := g.AddEdge(u, v); err != nil {
						return fmt.Errorf("%s: AddEdge(%s-%s): %w", MethodGrid, u, v, err)
					}
				}
			}
		}

		return nil
	}
}
