// SPDX-License-Identifier: MIT
// Package: superdistricts/builder
//
// options.go - functional options for BuildGraph and GridDataset.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption mutates builderConfig before use.
type BuilderOption func(*builderConfig)

// WithIDFn sets the index → vertex id mapping. A nil fn is ignored.
func WithIDFn(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithOffset shifts every constructor index by k, so that several
// constructors can be composed into one graph without id collisions.
// A negative k is recorded as ErrOptionViolation.
func WithOffset(k int) BuilderOption {
	return func(c *builderConfig) {
		if k < 0 {
			c.err = fmt.Errorf("WithOffset(%d): %w", k, ErrOptionViolation)
			return
		}
		c.idFn = OffsetIDFn(k)
	}
}

// WithRand uses r for all stochastic choices. A nil r is recorded as
// ErrOptionViolation.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r == nil {
			c.err = fmt.Errorf("WithRand(nil): %w", ErrOptionViolation)
			return
		}
		c.rng = r
	}
}

// WithSeed creates a private source seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithUnitFn sets the population/vote generator used by GridDataset.
// A nil fn is ignored.
func WithUnitFn(fn UnitFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.unitFn = fn
		}
	}
}
