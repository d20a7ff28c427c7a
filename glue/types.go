package glue

import (
	"errors"
	"fmt"
)

// Sentinel errors for gluing.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("glue: graph is nil")

	// ErrGluingInfeasible reports that no attempt produced a valid partition.
	ErrGluingInfeasible = errors.New("glue: no valid partition within attempt budget")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("glue: invalid option supplied")

	// ErrInvalidResult is returned by Verify for a result that breaks a
	// partition invariant.
	ErrInvalidResult = errors.New("glue: result violates partition invariants")
)

// Reason says why an attempt stopped.
type Reason int

const (
	// ReasonNone marks a successful attempt.
	ReasonNone Reason = iota
	// ReasonNoSeed: targets remained but every district was used.
	ReasonNoSeed
	// ReasonNoCandidate: a group could not grow to its target.
	ReasonNoCandidate
	// ReasonNotContiguous: a grown group was not connected.
	ReasonNotContiguous
	// ReasonInfeasibleRemainder: the unused districts failed the feasibility check.
	ReasonInfeasibleRemainder
)

// String returns the label used in logs and metrics.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonNoSeed:
		return "no_seed"
	case ReasonNoCandidate:
		return "no_candidate"
	case ReasonNotContiguous:
		return "not_contiguous"
	case ReasonInfeasibleRemainder:
		return "infeasible_remainder"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// AttemptReport describes one attempt.
type AttemptReport struct {
	// Attempt is the 0-based attempt index.
	Attempt int
	// Seed is the derived seed of this attempt (seed + Attempt).
	Seed int64
	// OK is true iff the attempt produced a full partition.
	OK bool
	// Reason is ReasonNone on success.
	Reason Reason
	// SuperDistrict is the index of the group being built when the attempt
	// stopped; len(targets) on success.
	SuperDistrict int
}

// Result is a completed gluing.
type Result struct {
	// DistrictToSuper maps every district 0..N-1 to its super-district.
	DistrictToSuper map[int]int
	// Groups[i] lists the districts of super-district i in ascending order.
	Groups [][]int
	// Attempt is the index of the successful attempt.
	Attempt int
	// Seed is the derived seed of the successful attempt.
	Seed int64
}

// InfeasibleError is returned when every attempt failed.
// errors.Is(err, ErrGluingInfeasible) holds.
type InfeasibleError struct {
	Attempts int
	Last     AttemptReport
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("%s: %d attempts, last stopped at super-district %d (%s)",
		ErrGluingInfeasible, e.Attempts, e.Last.SuperDistrict, e.Last.Reason)
}

// Unwrap exposes ErrGluingInfeasible to errors.Is.
func (e *InfeasibleError) Unwrap() error { return ErrGluingInfeasible }
