// Package plan defines the input data model of the gluing pipeline: base
// units, the baseline unit→district assignment and the target super-district
// size pattern, together with their validation rules.
package plan

import "errors"

// Sentinel errors for plan validation.
var (
	// ErrInvalidConfiguration covers target sizes that do not sum to the
	// district count, non-positive sizes, and district counts that disagree
	// with the baseline assignment. It is fatal and raised before gluing.
	ErrInvalidConfiguration = errors.New("plan: invalid configuration")

	// ErrInvalidInput covers malformed base-unit records: negative counts,
	// duplicate ids, or units missing from the baseline assignment.
	ErrInvalidInput = errors.New("plan: invalid input")

	// ErrUnassignedDistrict indicates a district id without a super-district.
	ErrUnassignedDistrict = errors.New("plan: district has no super-district")
)

// BaseUnit is an indivisible geographic unit (e.g. a precinct).
// Counts are non-negative; records are treated as immutable once loaded.
type BaseUnit struct {
	ID         int
	Population int64
	VotesA     int64
	VotesB     int64
}

// Assignment maps a base-unit id to its baseline DistrictId in [0, N).
type Assignment map[int]int

// TargetSizes is the ordered super-district size pattern (e.g. 5,5,4).
// Position i is SuperDistrictId i.
type TargetSizes []int

// Sum returns the total number of seats (districts) the pattern consumes.
func (t TargetSizes) Sum() int {
	s := 0
	for _, v := range t {
		s += v
	}

	return s
}

// Max returns the largest target, or 0 for an empty pattern.
func (t TargetSizes) Max() int {
	m := 0
	for _, v := range t {
		m = max(m, v)
	}

	return m
}
