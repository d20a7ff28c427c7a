package tally

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/superdistricts/plan"
)

// Aggregate sums every unit into the super-district of its district.
//
// A unit absent from a, or whose district is absent from districtToSuper,
// returns ErrUnassignedDistrict. Super-districts that receive no unit are
// absent from the result. Population and both vote counts are preserved
// exactly: their sums over the result equal their sums over units.
func Aggregate(units []plan.BaseUnit, a plan.Assignment, districtToSuper map[int]int) (map[int]Totals, error) {
	out := make(map[int]Totals)
	districts := make(map[int]map[int]struct{})
	for _, u := range units {
		d, ok := a[u.ID]
		if !ok {
			return nil, fmt.Errorf("%w: unit %d has no district", ErrUnassignedDistrict, u.ID)
		}
		s, ok := districtToSuper[d]
		if !ok {
			return nil, fmt.Errorf("%w: unit %d in district %d", ErrUnassignedDistrict, u.ID, d)
		}

		t := out[s]
		t.SuperDistrictID = s
		t.Population += u.Population
		t.VotesA += u.VotesA
		t.VotesB += u.VotesB
		t.Units++
		out[s] = t

		if districts[s] == nil {
			districts[s] = make(map[int]struct{})
		}
		districts[s][d] = struct{}{}
	}

	for s, t := range out {
		t.ShareA = share(t.VotesA, t.VotesB)
		t.Districts = make([]int, 0, len(districts[s]))
		for d := range districts[s] {
			t.Districts = append(t.Districts, d)
		}
		slices.Sort(t.Districts)
		out[s] = t
	}

	return out, nil
}
