// SPDX-License-Identifier: MIT
// Package: superdistricts/builder
//
// impl_complete.go - Complete(n): every unordered pair {i<j}.
// Complexity: O(n²).

package builder

import "github.com/katalvlaran/superdistricts/core"

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(MethodComplete, g, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
