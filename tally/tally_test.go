package tally_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/superdistricts/builder"
	"github.com/katalvlaran/superdistricts/plan"
	"github.com/katalvlaran/superdistricts/tally"
)

// twoDistricts: district 0 votes 60/40, district 1 votes 30/70, both pop 100.
func twoDistricts() ([]plan.BaseUnit, plan.Assignment) {
	units := []plan.BaseUnit{
		{ID: 10, Population: 60, VotesA: 40, VotesB: 20},
		{ID: 11, Population: 40, VotesA: 20, VotesB: 20},
		{ID: 12, Population: 100, VotesA: 30, VotesB: 70},
	}
	return units, plan.Assignment{10: 0, 11: 0, 12: 1}
}

func TestAggregateAllocate_MergedScenario(t *testing.T) {
	units, a := twoDistricts()

	totals, err := tally.Aggregate(units, a, map[int]int{0: 0, 1: 0})
	require.NoError(t, err)
	require.Len(t, totals, 1)

	sd := totals[0]
	assert.Equal(t, int64(200), sd.Population)
	assert.Equal(t, int64(90), sd.VotesA)
	assert.Equal(t, int64(110), sd.VotesB)
	assert.InDelta(t, 0.45, sd.ShareA, 1e-12)
	assert.Equal(t, 3, sd.Units)
	assert.Equal(t, []int{0, 1}, sd.Districts)

	seated, err := tally.Allocate(totals, plan.TargetSizes{3})
	require.NoError(t, err)
	assert.Equal(t, 3, seated[0].Seats)
	assert.Equal(t, 1, seated[0].SeatsA)
	assert.Equal(t, 2, seated[0].SeatsB)

	// input untouched
	assert.Zero(t, totals[0].Seats)
}

func TestAggregate_UnassignedDistrict(t *testing.T) {
	units, a := twoDistricts()

	_, err := tally.Aggregate(units, a, map[int]int{0: 0})
	assert.ErrorIs(t, err, tally.ErrUnassignedDistrict)
	assert.ErrorIs(t, err, plan.ErrUnassignedDistrict)

	_, err = tally.Aggregate([]plan.BaseUnit{{ID: 99}}, a, map[int]int{0: 0, 1: 0})
	assert.ErrorIs(t, err, tally.ErrUnassignedDistrict)
}

func TestAggregate_NoVotesShareZero(t *testing.T) {
	units := []plan.BaseUnit{{ID: 1, Population: 50}}
	totals, err := tally.Aggregate(units, plan.Assignment{1: 0}, map[int]int{0: 0})
	require.NoError(t, err)
	assert.Zero(t, totals[0].ShareA)

	seated, err := tally.Allocate(totals, plan.TargetSizes{4})
	require.NoError(t, err)
	assert.Equal(t, 0, seated[0].SeatsA)
	assert.Equal(t, 4, seated[0].SeatsB)
}

func TestAggregate_SumPreservingAndIdempotent(t *testing.T) {
	ds, err := builder.GridDataset(4, 4, 2, 1, builder.WithSeed(3), builder.WithUniformUnits(100, 900, 0.2, 0.8))
	require.NoError(t, err)
	// 8 districts into 3 super-districts
	d2s := map[int]int{0: 0, 1: 0, 2: 0, 3: 1, 4: 1, 5: 1, 6: 2, 7: 2}
	targets := plan.TargetSizes{3, 3, 2}

	var pop, va, vb int64
	for _, u := range ds.Units {
		pop += u.Population
		va += u.VotesA
		vb += u.VotesB
	}

	first, err := tally.Aggregate(ds.Units, ds.Assignment, d2s)
	require.NoError(t, err)
	var gotPop, gotA, gotB int64
	for _, tt := range first {
		gotPop += tt.Population
		gotA += tt.VotesA
		gotB += tt.VotesB
	}
	assert.Equal(t, pop, gotPop)
	assert.Equal(t, va, gotA)
	assert.Equal(t, vb, gotB)

	s1, err := tally.Allocate(first, targets)
	require.NoError(t, err)
	second, err := tally.Aggregate(ds.Units, ds.Assignment, d2s)
	require.NoError(t, err)
	s2, err := tally.Allocate(second, targets)
	require.NoError(t, err)
	assert.Equal(t, s1, s2)

	for i, tt := range s1 {
		assert.Equal(t, targets[i], tt.SeatsA+tt.SeatsB)
		assert.GreaterOrEqual(t, tt.SeatsA, 0)
		assert.GreaterOrEqual(t, tt.SeatsB, 0)
	}
}

func TestSeatsFor_Rounding(t *testing.T) {
	cases := []struct {
		name           string
		a, b           int64
		seats          int
		halfEven, half int
	}{
		{"1.35", 90, 110, 3, 1, 1},
		{"2.5 to even", 50, 50, 5, 2, 3},
		{"3.5 to even", 70, 30, 5, 4, 4},
		{"0.5 to even", 1, 9, 5, 0, 1},
		{"1.5 to even", 3, 7, 5, 2, 2},
		{"all A", 10, 0, 4, 4, 4},
		{"all B", 0, 10, 4, 0, 0},
		{"no votes", 0, 0, 4, 0, 0},
		{"just above half", 501, 499, 1, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.halfEven, tally.SeatsFor(tc.a, tc.b, tc.seats, tally.RoundHalfEven))
			assert.Equal(t, tc.half, tally.SeatsFor(tc.a, tc.b, tc.seats, tally.RoundHalfUp))
		})
	}
}

func TestAllocate_OptionsAndErrors(t *testing.T) {
	totals := map[int]tally.Totals{0: {SuperDistrictID: 0, VotesA: 50, VotesB: 50}}

	even, err := tally.Allocate(totals, plan.TargetSizes{5, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, even[0].SeatsA)
	// missing super-district 1 is filled with zero votes
	assert.Equal(t, tally.Totals{SuperDistrictID: 1, Seats: 1, SeatsB: 1}, even[1])

	up, err := tally.Allocate(totals, plan.TargetSizes{5, 1}, tally.WithRounding(tally.RoundHalfUp))
	require.NoError(t, err)
	assert.Equal(t, 3, up[0].SeatsA)

	_, err = tally.Allocate(map[int]tally.Totals{2: {}}, plan.TargetSizes{5, 1})
	assert.ErrorIs(t, err, tally.ErrUnknownSuperDistrict)

	_, err = tally.Allocate(totals, plan.TargetSizes{5}, tally.WithRounding(tally.Rounding(7)))
	assert.ErrorIs(t, err, tally.ErrOptionViolation)
}

func TestParseRounding(t *testing.T) {
	r, err := tally.ParseRounding("")
	require.NoError(t, err)
	assert.Equal(t, tally.RoundHalfEven, r)

	r, err = tally.ParseRounding("half-up")
	require.NoError(t, err)
	assert.Equal(t, tally.RoundHalfUp, r)
	assert.Equal(t, "half-up", r.String())

	_, err = tally.ParseRounding("bankers")
	assert.ErrorIs(t, err, tally.ErrOptionViolation)
}

func TestBaselineAndSummary(t *testing.T) {
	units, a := twoDistricts()
	// a tie district: 5/5 goes to B
	units = append(units, plan.BaseUnit{ID: 13, Population: 10, VotesA: 5, VotesB: 5})
	a[13] = 2

	base, err := tally.Baseline(units, a)
	require.NoError(t, err)
	require.Len(t, base, 3)
	assert.Equal(t, tally.PartyA, base[0].Winner)
	assert.Equal(t, tally.PartyB, base[1].Winner)
	assert.Equal(t, tally.PartyB, base[2].Winner)
	assert.InDelta(t, 0.6, base[0].ShareA, 1e-12)
	assert.Equal(t, 2, base[0].Units)

	ordered := tally.SortedDistricts(base)
	assert.Equal(t, []int{0, 1, 2}, []int{ordered[0].DistrictID, ordered[1].DistrictID, ordered[2].DistrictID})

	totals, err := tally.Aggregate(units, a, map[int]int{0: 0, 1: 0, 2: 0})
	require.NoError(t, err)
	seated, err := tally.Allocate(totals, plan.TargetSizes{3})
	require.NoError(t, err)

	s := tally.Summarize(seated, base)
	assert.Equal(t, 3, s.TotalSeats)
	assert.Equal(t, 1, s.SeatsA)
	assert.Equal(t, 2, s.SeatsB)
	assert.Equal(t, int64(95), s.VotesA)
	assert.Equal(t, int64(115), s.VotesB)
	assert.Equal(t, int64(210), s.Population)
	assert.Equal(t, 1, s.BaselineSeatsA)
	assert.Equal(t, 2, s.BaselineSeatsB)

	_, err = tally.Baseline([]plan.BaseUnit{{ID: 77}}, a)
	assert.ErrorIs(t, err, tally.ErrUnassignedDistrict)
}

func TestSorted(t *testing.T) {
	m := map[int]tally.Totals{2: {SuperDistrictID: 2}, 0: {SuperDistrictID: 0}, 1: {SuperDistrictID: 1}}
	got := tally.Sorted(m)
	require.Len(t, got, 3)
	for i, tt := range got {
		assert.Equal(t, i, tt.SuperDistrictID)
	}
}
