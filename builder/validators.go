// SPDX-License-Identifier: MIT
// Package: superdistricts/builder
//
// validators.go - parameter checks shared by constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/superdistricts/core"
)

// validateMin returns ErrTooFewVertices wrapped with the method tag when got < min.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability returns ErrInvalidProbability when p ∉ [0,1].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// addEdge inserts {u,v} and tags any core failure with method.
func addEdge(method string, g *core.Graph, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %v: %w", method, u, v, err, ErrConstructFailed)
	}

	return nil
}
