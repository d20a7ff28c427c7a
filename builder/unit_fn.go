// SPDX-License-Identifier: MIT
// Package: superdistricts/builder
//
// unit_fn.go - population and vote generators for synthetic units.
//
// Contract:
//   - A UnitFn never returns negative counts.
//   - With a nil rng every generator degrades to a deterministic constant.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/superdistricts/plan"
)

// Defaults for DefaultUnitFn.
const (
	DefaultPopulation = 1000
	DefaultVotesA     = 300
	DefaultVotesB     = 300
)

// UnitFn produces the counts of unit id. The returned ID is overwritten by
// the caller.
type UnitFn func(rng *rand.Rand, id int) plan.BaseUnit

// DefaultUnitFn returns the same balanced unit for every id.
func DefaultUnitFn(_ *rand.Rand, id int) plan.BaseUnit {
	return plan.BaseUnit{ID: id, Population: DefaultPopulation, VotesA: DefaultVotesA, VotesB: DefaultVotesB}
}

// ConstantUnitFn returns fixed counts. Negative inputs panic, as they are a
// programming error in a fixture.
func ConstantUnitFn(population, votesA, votesB int64) UnitFn {
	if population < 0 || votesA < 0 || votesB < 0 {
		panic(fmt.Sprintf("ConstantUnitFn: counts must be ≥ 0, got %d/%d/%d", population, votesA, votesB))
	}

	return func(_ *rand.Rand, id int) plan.BaseUnit {
		return plan.BaseUnit{ID: id, Population: population, VotesA: votesA, VotesB: votesB}
	}
}

// UniformUnitFn draws population uniformly from [minPop, maxPop], turnout
// uniformly from [0.4, 0.8) of population, and party A's share uniformly
// from [shareLo, shareHi).
func UniformUnitFn(minPop, maxPop int64, shareLo, shareHi float64) UnitFn {
	if minPop < 0 || maxPop < minPop {
		panic(fmt.Sprintf("UniformUnitFn: require 0 ≤ min ≤ max, got min=%d, max=%d", minPop, maxPop))
	}
	if shareLo < 0 || shareHi > 1 || shareHi < shareLo {
		panic(fmt.Sprintf("UniformUnitFn: require 0 ≤ lo ≤ hi ≤ 1, got lo=%g, hi=%g", shareLo, shareHi))
	}

	return func(rng *rand.Rand, id int) plan.BaseUnit {
		if rng == nil {
			return DefaultUnitFn(nil, id)
		}
		pop := minPop
		if maxPop > minPop {
			pop += rng.Int63n(maxPop - minPop + 1)
		}
		turnout := int64(float64(pop) * (0.4 + 0.4*rng.Float64()))
		share := shareLo + (shareHi-shareLo)*rng.Float64()
		a := int64(float64(turnout) * share)

		return plan.BaseUnit{ID: id, Population: pop, VotesA: a, VotesB: turnout - a}
	}
}

// WithUniformUnits is shorthand for WithUnitFn(UniformUnitFn(...)).
func WithUniformUnits(minPop, maxPop int64, shareLo, shareHi float64) BuilderOption {
	return WithUnitFn(UniformUnitFn(minPop, maxPop, shareLo, shareHi))
}
