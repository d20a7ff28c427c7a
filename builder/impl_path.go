// SPDX-License-Identifier: MIT
// Package: superdistricts/builder
//
// impl_path.go - Path(n): vertices idFn(0..n-1), edges (i-1, i) in increasing i.
// Complexity: O(n).

package builder

import "github.com/katalvlaran/superdistricts/core"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		for i := 1; i < n; i++ {
			if err := addEdge(MethodPath, g, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
