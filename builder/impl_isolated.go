// SPDX-License-Identifier: MIT
// Package: superdistricts/builder
//
// impl_isolated.go - Isolated(n): n vertices and no edges.

package builder

import "github.com/katalvlaran/superdistricts/core"

// Isolated returns a Constructor that adds n vertices without edges.
// Isolated(0) is a no-op.
func Isolated(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodIsolated, n, MinIsolated); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}

		return nil
	}
}
