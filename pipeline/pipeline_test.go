package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/superdistricts/builder"
	"github.com/katalvlaran/superdistricts/config"
	"github.com/katalvlaran/superdistricts/core"
	"github.com/katalvlaran/superdistricts/dataio"
	"github.com/katalvlaran/superdistricts/glue"
	"github.com/katalvlaran/superdistricts/metrics"
	"github.com/katalvlaran/superdistricts/pipeline"
	"github.com/katalvlaran/superdistricts/plan"
	"github.com/katalvlaran/superdistricts/tally"
)

// gridInputs is a 4×7 unit grid tiled into 14 districts of 2×1 units.
func gridInputs(t *testing.T) *dataio.Inputs {
	t.Helper()
	ds, err := builder.GridDataset(4, 7, 2, 1, builder.WithSeed(5), builder.WithUniformUnits(200, 800, 0.3, 0.7))
	require.NoError(t, err)
	require.Equal(t, 14, ds.NumDistricts)
	return &dataio.Inputs{Units: ds.Units, Adjacency: ds.Adjacency, Assignment: ds.Assignment}
}

func nc() pipeline.Params {
	return pipeline.Params{NumDistricts: 14, Targets: plan.TargetSizes{5, 5, 4}, Seed: 42}
}

func TestRun_EndToEnd(t *testing.T) {
	in := gridInputs(t)
	obs, logs := observer.New(zap.InfoLevel)
	c := metrics.NewCollector("")
	p := pipeline.New(pipeline.WithLogger(zap.New(obs)), pipeline.WithCollector(c))

	rep, err := p.Run(context.Background(), in, nc())
	require.NoError(t, err)

	assert.NotEmpty(t, rep.RunID)
	require.NoError(t, glue.Verify(rep.DistrictGraph, plan.TargetSizes{5, 5, 4}, rep.Gluing.DistrictToSuper))
	require.Len(t, rep.Totals, 3)
	require.Len(t, rep.Baseline, 14)
	assert.Len(t, rep.UnitToSuper, 28)

	var pop int64
	for _, u := range in.Units {
		pop += u.Population
	}
	assert.Equal(t, pop, rep.Summary.Population)
	assert.Equal(t, 14, rep.Summary.TotalSeats)
	assert.Equal(t, 14, rep.Summary.SeatsA+rep.Summary.SeatsB)
	assert.Equal(t, 14, rep.Summary.BaselineSeatsA+rep.Summary.BaselineSeatsB)
	for i, tt := range rep.Totals {
		assert.Equal(t, i, tt.SuperDistrictID)
		assert.Equal(t, []int{5, 5, 4}[i], tt.Seats)
	}

	assert.Equal(t, 1, logs.FilterMessage("run finished").Len())
	assert.Zero(t, logs.FilterMessage("districts without neighbors").Len())
	for _, e := range logs.FilterMessage("stage done").All() {
		assert.Equal(t, rep.RunID, e.ContextMap()["run_id"])
	}
}

// TestRun_WarnsOnIsolatedDistrict lifts three single-unit districts where
// district 2 touches nothing; it can still form the size-1 super-district.
func TestRun_WarnsOnIsolatedDistrict(t *testing.T) {
	adj := core.NewGraph(core.WithVertexRange(3))
	require.NoError(t, adj.AddEdge(0, 1))
	in := &dataio.Inputs{
		Units: []plan.BaseUnit{
			{ID: 0, Population: 10, VotesA: 6, VotesB: 4},
			{ID: 1, Population: 10, VotesA: 3, VotesB: 7},
			{ID: 2, Population: 10, VotesA: 5, VotesB: 5},
		},
		Adjacency:  adj,
		Assignment: plan.Assignment{0: 0, 1: 1, 2: 2},
	}
	obs, logs := observer.New(zap.WarnLevel)
	params := pipeline.Params{NumDistricts: 3, Targets: plan.TargetSizes{2, 1}, Seed: 3}

	rep, err := pipeline.New(pipeline.WithLogger(zap.New(obs))).Run(context.Background(), in, params)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, rep.Gluing.Groups[1])

	warns := logs.FilterMessage("districts without neighbors").All()
	require.Len(t, warns, 1)
	assert.Equal(t, []interface{}{2}, warns[0].ContextMap()["districts"])
}

func TestRun_Deterministic(t *testing.T) {
	in := gridInputs(t)
	a, err := pipeline.New().Run(context.Background(), in, nc())
	require.NoError(t, err)

	params := nc()
	params.Workers = 4
	b, err := pipeline.New().Run(context.Background(), in, params)
	require.NoError(t, err)

	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, a.Gluing, b.Gluing)
	assert.Equal(t, a.Totals, b.Totals)
	assert.Equal(t, a.Summary, b.Summary)
}

func TestRun_Errors(t *testing.T) {
	in := gridInputs(t)

	bad := nc()
	bad.Targets = plan.TargetSizes{5, 5, 5}
	_, err := pipeline.New().Run(context.Background(), in, bad)
	assert.ErrorIs(t, err, plan.ErrInvalidConfiguration)

	// drop every edge: singleton districts cannot be glued into fives
	iso, err := builder.BuildGraph(nil, builder.Isolated(28))
	require.NoError(t, err)
	c := metrics.NewCollector("")
	_, err = pipeline.New(pipeline.WithCollector(c)).Run(context.Background(),
		&dataio.Inputs{Units: in.Units, Adjacency: iso, Assignment: in.Assignment},
		pipeline.Params{NumDistricts: 14, Targets: plan.TargetSizes{5, 5, 4}, MaxAttempts: 10})
	assert.ErrorIs(t, err, glue.ErrGluingInfeasible)

	var text strings.Builder
	require.NoError(t, c.WriteText(&text))
	assert.Contains(t, text.String(), `superdistricts_glue_runs_total{result="infeasible"} 1`)
	assert.Contains(t, text.String(), `superdistricts_glue_attempts_total{outcome="failed",reason="no_candidate"} 10`)
}

func TestRunConfig_WritesOutputs(t *testing.T) {
	dir := t.TempDir()
	ds, err := builder.GridDataset(4, 7, 2, 1, builder.WithSeed(9), builder.WithUniformUnits(100, 300, 0.4, 0.6))
	require.NoError(t, err)

	inDir := filepath.Join(dir, "in")
	require.NoError(t, dataio.CreateFile(inDir, dataio.FileUnits, func(f *os.File) error { return dataio.WriteUnits(f, ds.Units) }))
	require.NoError(t, dataio.CreateFile(inDir, dataio.FileAdjacency, func(f *os.File) error { return dataio.WriteAdjacency(f, ds.Adjacency) }))
	require.NoError(t, dataio.CreateFile(inDir, dataio.FileAssignment, func(f *os.File) error { return dataio.WriteMapping(f, ds.Assignment) }))

	cfg := config.Default()
	cfg.Inputs = config.Inputs{
		Units:      filepath.Join(inDir, dataio.FileUnits),
		Adjacency:  filepath.Join(inDir, dataio.FileAdjacency),
		Assignment: filepath.Join(inDir, dataio.FileAssignment),
	}
	cfg.Outputs.Dir = filepath.Join(dir, "out")
	cfg.Metrics = true
	cfg.Rounding = tally.RoundHalfUp.String()
	require.NoError(t, cfg.Validate())

	p := pipeline.New(pipeline.WithCollector(metrics.NewCollector("")))
	rep, err := p.RunConfig(context.Background(), cfg)
	require.NoError(t, err)

	for _, name := range []string{
		dataio.FileSuperAssignment, dataio.FileDistrictToSuper,
		dataio.FileResults, dataio.FileBaseline, dataio.FileMetrics,
	} {
		_, err := os.Stat(filepath.Join(cfg.Outputs.Dir, name))
		assert.NoError(t, err, name)
	}

	f, err := os.Open(filepath.Join(cfg.Outputs.Dir, dataio.FileDistrictToSuper))
	require.NoError(t, err)
	defer f.Close()
	d2s, err := dataio.ReadMapping(f)
	require.NoError(t, err)
	assert.Equal(t, rep.Gluing.DistrictToSuper, d2s)

	results, err := os.ReadFile(filepath.Join(cfg.Outputs.Dir, dataio.FileResults))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(results)), "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "superdistrict_id,total_seats"))
}
