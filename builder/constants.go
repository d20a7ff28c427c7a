// SPDX-License-Identifier: MIT
// Package: superdistricts/builder
//
// constants.go - method tags and parameter minima shared by constructors.

package builder

// Method tags used as error prefixes.
const (
	MethodCycle        = "Cycle"
	MethodPath         = "Path"
	MethodStar         = "Star"
	MethodComplete     = "Complete"
	MethodGrid         = "Grid"
	MethodIsolated     = "Isolated"
	MethodRandomSparse = "RandomSparse"
	MethodGridDataset  = "GridDataset"
)

// Parameter minima.
const (
	MinCycleNodes    = 3
	MinPathNodes     = 2
	MinStarNodes     = 2
	MinCompleteNodes = 1
	MinGridDim       = 1
	MinIsolated      = 0
)

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
