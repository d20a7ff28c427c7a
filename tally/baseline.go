package tally

import (
	"fmt"

	"github.com/katalvlaran/superdistricts/plan"
)

// Baseline tallies every baseline district as a single-member seat.
// A unit absent from a returns ErrUnassignedDistrict.
func Baseline(units []plan.BaseUnit, a plan.Assignment) (map[int]DistrictTotals, error) {
	out := make(map[int]DistrictTotals)
	for _, u := range units {
		d, ok := a[u.ID]
		if !ok {
			return nil, fmt.Errorf("%w: unit %d has no district", ErrUnassignedDistrict, u.ID)
		}
		t := out[d]
		t.DistrictID = d
		t.Population += u.Population
		t.VotesA += u.VotesA
		t.VotesB += u.VotesB
		t.Units++
		out[d] = t
	}

	for d, t := range out {
		t.ShareA = share(t.VotesA, t.VotesB)
		t.Winner = PartyB
		if t.VotesA > t.VotesB {
			t.Winner = PartyA
		}
		out[d] = t
	}

	return out, nil
}
