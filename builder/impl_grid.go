// SPDX-License-Identifier: MIT
// Package: superdistricts/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   - Cell (r,c) has index r*cols+c (row-major) and vertex id idFn(r*cols+c).
//
// Determinism:
//   - Stable vertex order: row-major (r asc, then c asc).
//   - Stable edge order: for each (r,c) emit Right then Bottom if present.
//
// Complexity: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/superdistricts/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddVertex(cfg.idFn(GridIndex(r, c, cols)))
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cfg.idFn(GridIndex(r, c, cols))
				if c+1 < cols {
					if err := addEdge(MethodGrid, g, u, cfg.idFn(GridIndex(r, c+1, cols))); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(MethodGrid, g, u, cfg.idFn(GridIndex(r+1, c, cols))); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// GridIndex is the row-major index of cell (r,c) in a grid with cols columns.
func GridIndex(r, c, cols int) int { return r*cols + c }
