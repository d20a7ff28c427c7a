package pipeline

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/superdistricts/config"
	"github.com/katalvlaran/superdistricts/dataio"
)

// ParamsFromConfig extracts the run parameters of cfg.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		NumDistricts: cfg.NumDistricts,
		Targets:      cfg.TargetSizes,
		Seed:         cfg.Seed,
		MaxAttempts:  cfg.MaxAttempts,
		Workers:      cfg.Workers,
		Strict:       cfg.StrictFeasibility,
		Rounding:     cfg.RoundingMode(),
	}
}

// RunConfig loads the inputs named by cfg, runs, and writes every output
// into cfg.Outputs.Dir. The metrics file is written only when cfg.Metrics
// is set and the pipeline has a collector.
func (p *Pipeline) RunConfig(ctx context.Context, cfg *config.Config) (*Report, error) {
	in, err := dataio.LoadInputs(cfg.Inputs.Units, cfg.Inputs.Adjacency, cfg.Inputs.Assignment)
	if err != nil {
		return nil, err
	}
	rep, err := p.Run(ctx, in, ParamsFromConfig(cfg))
	if err != nil {
		return nil, err
	}
	if err := p.WriteOutputs(cfg.Outputs.Dir, rep, cfg.Metrics); err != nil {
		return nil, err
	}

	return rep, nil
}

// output is one file of a run.
type output struct {
	name string
	fn   func(*os.File) error
}

// WriteOutputs writes the result files of rep into dir.
func (p *Pipeline) WriteOutputs(dir string, rep *Report, withMetrics bool) error {
	writers := []output{
		{dataio.FileSuperAssignment, func(f *os.File) error { return dataio.WriteMapping(f, rep.UnitToSuper) }},
		{dataio.FileDistrictToSuper, func(f *os.File) error { return dataio.WriteMapping(f, rep.Gluing.DistrictToSuper) }},
		{dataio.FileResults, func(f *os.File) error { return dataio.WriteResults(f, rep.Totals) }},
		{dataio.FileBaseline, func(f *os.File) error { return dataio.WriteBaseline(f, rep.Baseline) }},
	}
	if withMetrics && p.collector != nil {
		writers = append(writers, output{dataio.FileMetrics, func(f *os.File) error { return p.collector.WriteText(f) }})
	}

	for _, w := range writers {
		if err := dataio.CreateFile(dir, w.name, w.fn); err != nil {
			return err
		}
		p.logger.Info("output written", zap.String("run_id", rep.RunID), zap.String("file", w.name))
	}

	return nil
}
