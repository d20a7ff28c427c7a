package tally

import (
	"errors"
	"maps"
	"slices"

	"github.com/katalvlaran/superdistricts/plan"
)

// Sentinel errors for tallying.
var (
	// ErrUnassignedDistrict is returned when a unit cannot be resolved to a
	// super-district. It is plan.ErrUnassignedDistrict.
	ErrUnassignedDistrict = plan.ErrUnassignedDistrict

	// ErrUnknownSuperDistrict is returned by Allocate for totals whose id has
	// no seat target.
	ErrUnknownSuperDistrict = errors.New("tally: super-district has no seat target")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tally: invalid option supplied")
)

// Party labels a winner.
type Party string

// The two parties. A is the party whose share is tracked.
const (
	PartyA Party = "A"
	PartyB Party = "B"
)

// Totals is the running record of one super-district.
type Totals struct {
	SuperDistrictID int
	Population      int64
	VotesA          int64
	VotesB          int64
	// ShareA is VotesA/(VotesA+VotesB), 0 when no votes were cast.
	ShareA float64
	// Seats, SeatsA and SeatsB are zero until Allocate.
	Seats  int
	SeatsA int
	SeatsB int
	// Units is the number of base units aggregated.
	Units int
	// Districts lists the baseline districts merged here, ascending.
	Districts []int
}

// DistrictTotals is the baseline winner-take-all record of one district.
type DistrictTotals struct {
	DistrictID int
	Population int64
	VotesA     int64
	VotesB     int64
	ShareA     float64
	Units      int
	// Winner is PartyA iff VotesA > VotesB; ties go to PartyB.
	Winner Party
}

// share returns a/(a+b), or 0 when a+b == 0.
func share(a, b int64) float64 {
	if a+b == 0 {
		return 0
	}

	return float64(a) / float64(a+b)
}

// Sorted returns the totals ordered by SuperDistrictID.
func Sorted(m map[int]Totals) []Totals {
	out := make([]Totals, 0, len(m))
	for _, id := range slices.Sorted(maps.Keys(m)) {
		out = append(out, m[id])
	}

	return out
}

// SortedDistricts returns the district totals ordered by DistrictID.
func SortedDistricts(m map[int]DistrictTotals) []DistrictTotals {
	out := make([]DistrictTotals, 0, len(m))
	for _, id := range slices.Sorted(maps.Keys(m)) {
		out = append(out, m[id])
	}

	return out
}
