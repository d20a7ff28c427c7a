// SPDX-License-Identifier: MIT
// Package: superdistricts/builder
//
// dataset.go - complete synthetic inputs for the gluing pipeline.
//
// GridDataset lays units on a rows×cols grid (ids row-major, see Grid) and
// tiles it with blockRows×blockCols rectangles; each rectangle is one
// baseline district, numbered row-major over the block grid. The district
// graph of such a plan is itself a grid of (rows/blockRows)×(cols/blockCols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/superdistricts/core"
	"github.com/katalvlaran/superdistricts/plan"
)

// Dataset bundles the three inputs a gluing run consumes.
type Dataset struct {
	Units        []plan.BaseUnit
	Adjacency    *core.Graph
	Assignment   plan.Assignment
	NumDistricts int
}

// GridDataset builds a synthetic dataset. Unit counts come from the
// configured UnitFn, drawn in row-major order from the configured RNG.
//
// Errors: ErrTooFewVertices for non-positive dimensions, ErrBadSize when the
// blocks do not tile the grid, ErrOptionViolation for invalid options.
func GridDataset(rows, cols, blockRows, blockCols int, opts ...BuilderOption) (*Dataset, error) {
	if blockRows < 1 || blockCols < 1 {
		return nil, fmt.Errorf("%s: block %dx%d: %w", MethodGridDataset, blockRows, blockCols, ErrTooFewVertices)
	}
	if rows%blockRows != 0 || cols%blockCols != 0 {
		return nil, fmt.Errorf("%s: block %dx%d does not tile %dx%d: %w",
			MethodGridDataset, blockRows, blockCols, rows, cols, ErrBadSize)
	}

	adj, err := BuildGraph(opts, Grid(rows, cols))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGridDataset, err)
	}
	cfg := newBuilderConfig(opts...)

	perRow := cols / blockCols
	ds := &Dataset{
		Units:        make([]plan.BaseUnit, 0, rows*cols),
		Adjacency:    adj,
		Assignment:   make(plan.Assignment, rows*cols),
		NumDistricts: (rows / blockRows) * perRow,
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := cfg.idFn(GridIndex(r, c, cols))
			u := cfg.unitFn(cfg.rng, id)
			u.ID = id
			ds.Units = append(ds.Units, u)
			ds.Assignment[id] = GridIndex(r/blockRows, c/blockCols, perRow)
		}
	}

	return ds, nil
}
