// SPDX-License-Identifier: MIT
// Package: superdistricts/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Topology factories live in impl_*.go; dataset generators in dataset.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/superdistricts/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate their parameters first and return
// sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
//
// Composition: constructors share one graph, so disjoint pieces need
// distinct id ranges (see WithOffset) or they will be merged on equal ids.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", cfg.err)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Topology factories (implemented in impl_*.go):
//
//	Path(n)              P_n, n ≥ 2
//	Cycle(n)             C_n, n ≥ 3
//	Star(n)              center idFn(0) plus n-1 leaves, n ≥ 2
//	Complete(n)          K_n, n ≥ 1
//	Grid(rows, cols)     4-neighborhood grid, row-major ids r*cols+c
//	Isolated(n)          n vertices, no edges
//	RandomSparse(n, p)   Erdős–Rényi G(n,p); requires an RNG when 0<p<1
