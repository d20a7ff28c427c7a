// SPDX-License-Identifier: MIT
// Package: superdistricts/builder
//
// config.go - resolved builder configuration.

package builder

import "math/rand"

// builderConfig holds the resolved knobs shared by constructors and
// dataset generators. It is built once per call and never mutated after.
type builderConfig struct {
	// idFn maps a constructor-local index to a vertex id.
	idFn IDFn
	// rng drives stochastic constructors and unit generation; nil unless set.
	rng *rand.Rand
	// unitFn produces population and votes for one unit.
	unitFn UnitFn

	// err records the first invalid option; surfaced by BuildGraph/GridDataset.
	err error
}

// newBuilderConfig applies opts over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		rng:    nil,
		unitFn: DefaultUnitFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
