// SPDX-License-Identifier: MIT
// Package: superdistricts/builder
//
// errors.go - sentinel errors. Constructors wrap them with "%s: ...: %w" so
// callers can branch with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below its constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates p outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic path ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a core failure.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadSize indicates block dimensions that do not tile the grid.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrOptionViolation indicates an invalid option value.
var ErrOptionViolation = errors.New("builder: invalid option value")
