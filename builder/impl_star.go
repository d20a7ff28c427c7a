// SPDX-License-Identifier: MIT
// Package: superdistricts/builder
//
// impl_star.go - Star(n): center idFn(0), leaves idFn(1..n-1).
// Complexity: O(n).

package builder

import "github.com/katalvlaran/superdistricts/core"

// Star returns a Constructor that builds a star with n-1 leaves.
// A star models an enclave ring: removing the center disconnects every leaf.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		center := cfg.idFn(0)
		g.AddVertex(center)
		for i := 1; i < n; i++ {
			if err := addEdge(MethodStar, g, center, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
