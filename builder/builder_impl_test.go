// Package builder_test contains functional tests for the constructors and
// dataset generators, verifying topology, counts and determinism.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/superdistricts/builder"
	"github.com/katalvlaran/superdistricts/core"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					assert.True(t, g.HasEdge(i, (i+1)%5), "edge %d-%d", i, (i+1)%5)
				}
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}}, g.Edges())
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				d, err := g.Degree(0)
				require.NoError(t, err)
				assert.Equal(t, 4, d)
			},
		},
		{name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10},
		{
			name: "Grid(3,4)", ctor: builder.Grid(3, 4), wantV: 12, wantE: 3*3 + 2*4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				// (1,1) = 5 touches (0,1), (1,0), (1,2), (2,1)
				nbrs, err := g.NeighborIDs(5)
				require.NoError(t, err)
				assert.Equal(t, []int{1, 4, 6, 9}, nbrs)
				// no wrap-around between rows
				assert.False(t, g.HasEdge(3, 4))
			},
		},
		{name: "Isolated(3)", ctor: builder.Isolated(3), wantV: 3, wantE: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}

			// idempotent on re-application
			again, err := builder.BuildGraph(nil, tc.ctor, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, g.Edges(), again.Edges())
		})
	}
}

func TestBuilders_ParameterErrors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"Isolated(-1)", builder.Isolated(-1), builder.ErrTooFewVertices},
		{"RandomSparse p>1", builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse no rng", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := builder.BuildGraph([]builder.BuilderOption{builder.WithRand(nil)}, builder.Path(3))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
	_, err = builder.BuildGraph([]builder.BuilderOption{builder.WithOffset(-2)}, builder.Path(3))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42)}
	g1, err := builder.BuildGraph(opts, builder.RandomSparse(20, 0.2))
	require.NoError(t, err)
	g2, err := builder.BuildGraph([]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(42)))},
		builder.RandomSparse(20, 0.2))
	require.NoError(t, err)
	assert.Equal(t, g1.Edges(), g2.Edges())

	full, err := builder.BuildGraph(nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 10, full.EdgeCount())

	empty, err := builder.BuildGraph(nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.EdgeCount())
}

func TestComposeWithOffset(t *testing.T) {
	// Two disjoint paths: 0-1-2 and 10-11-12.
	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)
	other, err := builder.BuildGraph([]builder.BuilderOption{builder.WithOffset(10)}, builder.Path(3))
	require.NoError(t, err)
	for _, e := range other.Edges() {
		require.NoError(t, g.AddEdge(e.From, e.To))
	}
	assert.Equal(t, []int{0, 1, 2, 10, 11, 12}, g.Vertices())
	assert.False(t, g.HasEdge(2, 10))

	stride, err := builder.BuildGraph([]builder.BuilderOption{builder.WithIDFn(builder.StrideIDFn(1, 2))}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, stride.Vertices())
}
