package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/superdistricts/builder"
	"github.com/katalvlaran/superdistricts/plan"
)

func TestGridDataset_Shape(t *testing.T) {
	ds, err := builder.GridDataset(4, 6, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, 6, ds.NumDistricts)
	assert.Len(t, ds.Units, 24)
	assert.Equal(t, 24, ds.Adjacency.VertexCount())
	require.NoError(t, ds.Assignment.Validate(ds.NumDistricts))
	require.NoError(t, plan.ValidateUnits(ds.Units, ds.Assignment))

	// (0,0) (0,1) (1,0) (1,1) share district 0; (3,5) is in district 5
	for _, id := range []int{0, 1, 6, 7} {
		assert.Equal(t, 0, ds.Assignment[id])
	}
	assert.Equal(t, 5, ds.Assignment[23])
	assert.Equal(t, int64(builder.DefaultPopulation), ds.Units[0].Population)
}

func TestGridDataset_SeededUnits(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformUnits(500, 1500, 0.3, 0.7)}
	a, err := builder.GridDataset(3, 3, 1, 3, opts...)
	require.NoError(t, err)
	b, err := builder.GridDataset(3, 3, 1, 3, builder.WithSeed(7), builder.WithUniformUnits(500, 1500, 0.3, 0.7))
	require.NoError(t, err)
	assert.Equal(t, a.Units, b.Units)

	for _, u := range a.Units {
		assert.GreaterOrEqual(t, u.Population, int64(500))
		assert.LessOrEqual(t, u.Population, int64(1500))
		assert.GreaterOrEqual(t, u.VotesA, int64(0))
		assert.GreaterOrEqual(t, u.VotesB, int64(0))
		assert.LessOrEqual(t, u.VotesA+u.VotesB, u.Population)
	}
}

func TestGridDataset_Errors(t *testing.T) {
	_, err := builder.GridDataset(4, 4, 3, 2)
	assert.ErrorIs(t, err, builder.ErrBadSize)

	_, err = builder.GridDataset(4, 4, 0, 2)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.GridDataset(0, 0, 1, 1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestUnitFns(t *testing.T) {
	u := builder.ConstantUnitFn(10, 4, 6)(nil, 3)
	assert.Equal(t, plan.BaseUnit{ID: 3, Population: 10, VotesA: 4, VotesB: 6}, u)

	assert.Panics(t, func() { builder.ConstantUnitFn(-1, 0, 0) })
	assert.Panics(t, func() { builder.UniformUnitFn(10, 5, 0, 1) })
	assert.Panics(t, func() { builder.UniformUnitFn(1, 5, 0.6, 0.4) })

	// nil rng degrades to the default unit
	d := builder.UniformUnitFn(1, 5, 0, 1)(nil, 2)
	assert.Equal(t, builder.DefaultUnitFn(nil, 2), d)
}
