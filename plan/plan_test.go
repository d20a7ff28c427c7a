package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/superdistricts/plan"
)

func TestTargetSizes_Validate(t *testing.T) {
	cases := []struct {
		name    string
		targets plan.TargetSizes
		n       int
		wantErr bool
	}{
		{"five-five-four", plan.TargetSizes{5, 5, 4}, 14, false},
		{"sum mismatch 4 vs 3", plan.TargetSizes{3, 1}, 3, true},
		{"sum short", plan.TargetSizes{2, 1}, 4, true},
		{"zero entry", plan.TargetSizes{4, 0}, 4, true},
		{"negative entry", plan.TargetSizes{5, -1}, 4, true},
		{"empty", plan.TargetSizes{}, 4, true},
		{"non-positive districts", plan.TargetSizes{1}, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.targets.Validate(tc.n)
			if tc.wantErr {
				assert.ErrorIs(t, err, plan.ErrInvalidConfiguration)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTargetSizes_SumMax(t *testing.T) {
	ts := plan.TargetSizes{5, 5, 4}
	assert.Equal(t, 14, ts.Sum())
	assert.Equal(t, 5, ts.Max())
	assert.Equal(t, 0, plan.TargetSizes(nil).Max())
}

func TestAssignment_Validate(t *testing.T) {
	a := plan.Assignment{10: 0, 11: 1, 12: 1, 13: 2}
	require.NoError(t, a.Validate(3))
	assert.Equal(t, 3, a.Districts())

	// numDistricts disagrees with distinct count
	assert.ErrorIs(t, a.Validate(4), plan.ErrInvalidConfiguration)
	// out of range id
	assert.ErrorIs(t, plan.Assignment{1: 5}.Validate(3), plan.ErrInvalidConfiguration)
	assert.ErrorIs(t, plan.Assignment{1: -1}.Validate(3), plan.ErrInvalidConfiguration)
	assert.ErrorIs(t, plan.Assignment{}.Validate(1), plan.ErrInvalidConfiguration)
}

func TestValidateUnits(t *testing.T) {
	a := plan.Assignment{1: 0, 2: 0}
	ok := []plan.BaseUnit{{ID: 1, Population: 10}, {ID: 2, VotesA: 3}}
	require.NoError(t, plan.ValidateUnits(ok, a))

	dup := []plan.BaseUnit{{ID: 1}, {ID: 1}}
	assert.ErrorIs(t, plan.ValidateUnits(dup, a), plan.ErrInvalidInput)

	neg := []plan.BaseUnit{{ID: 1, VotesB: -1}}
	assert.ErrorIs(t, plan.ValidateUnits(neg, a), plan.ErrInvalidInput)

	missing := []plan.BaseUnit{{ID: 3}}
	assert.ErrorIs(t, plan.ValidateUnits(missing, a), plan.ErrInvalidInput)
}

func TestValidate_Order(t *testing.T) {
	a := plan.Assignment{0: 0, 1: 1, 2: 2}
	units := []plan.BaseUnit{{ID: 0}, {ID: 1}, {ID: 2}}

	// configuration errors win over input errors
	err := plan.Validate([]plan.BaseUnit{{ID: 9}}, a, plan.TargetSizes{3, 1}, 3)
	assert.ErrorIs(t, err, plan.ErrInvalidConfiguration)

	assert.NoError(t, plan.Validate(units, a, plan.TargetSizes{2, 1}, 3))
}

func TestCompose(t *testing.T) {
	a := plan.Assignment{100: 0, 101: 1, 102: 2, 103: 3}
	got, err := plan.Compose(a, map[int]int{0: 0, 1: 0, 2: 1, 3: 1})
	require.NoError(t, err)
	assert.Equal(t, map[int]int{100: 0, 101: 0, 102: 1, 103: 1}, got)

	_, err = plan.Compose(a, map[int]int{0: 0})
	assert.ErrorIs(t, err, plan.ErrUnassignedDistrict)
}
