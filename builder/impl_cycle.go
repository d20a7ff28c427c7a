// SPDX-License-Identifier: MIT
// Package: superdistricts/builder
//
// impl_cycle.go - Cycle(n): a Path(n) closed by the edge (n-1, 0).
// Complexity: O(n).

package builder

import "github.com/katalvlaran/superdistricts/core"

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			if err := addEdge(MethodCycle, g, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
