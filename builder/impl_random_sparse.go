// SPDX-License-Identifier: MIT
// Package: superdistricts/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i<j} independently with prob p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices), 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: for each i asc, j asc with j > i.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/superdistricts/core"
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, 1); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		if p == 0.0 {
			return nil
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// p == 1 takes every pair without consuming the source.
				if p < 1.0 && cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(MethodRandomSparse, g, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
