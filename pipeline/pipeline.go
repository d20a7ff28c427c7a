// Package pipeline runs the full FRA flow on loaded inputs:
//
//	validate → lift → glue → aggregate → allocate → baseline → summary
//
// and writes the result files. It is the only package that logs; library
// packages report through errors and hooks.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/superdistricts/core"
	"github.com/katalvlaran/superdistricts/dataio"
	"github.com/katalvlaran/superdistricts/glue"
	"github.com/katalvlaran/superdistricts/lift"
	"github.com/katalvlaran/superdistricts/metrics"
	"github.com/katalvlaran/superdistricts/plan"
	"github.com/katalvlaran/superdistricts/tally"
)

// Stage names used in logs and the stage duration metric.
const (
	StageValidate  = "validate"
	StageLift      = "lift"
	StageGlue      = "glue"
	StageAggregate = "aggregate"
	StageAllocate  = "allocate"
	StageBaseline  = "baseline"
)

// Pipeline holds the ambient collaborators of a run.
type Pipeline struct {
	logger    *zap.Logger
	collector *metrics.Collector
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithCollector enables metrics. Without it nothing is recorded.
func WithCollector(c *metrics.Collector) Option {
	return func(p *Pipeline) { p.collector = c }
}

// New returns a pipeline with a no-op logger and no collector unless
// configured otherwise.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Collector returns the configured collector, or nil.
func (p *Pipeline) Collector() *metrics.Collector { return p.collector }

// Params are the numeric knobs of one run.
type Params struct {
	NumDistricts int
	Targets      plan.TargetSizes
	Seed         int64
	MaxAttempts  int
	Workers      int
	Strict       bool
	Rounding     tally.Rounding
}

// Report is everything a run produced.
type Report struct {
	RunID         string
	DistrictGraph *core.Graph
	Gluing        *glue.Result
	// UnitToSuper maps every base unit to its super-district.
	UnitToSuper map[int]int
	// Totals are ordered by super-district id.
	Totals []tally.Totals
	// Baseline is ordered by district id.
	Baseline []tally.DistrictTotals
	Summary  tally.Summary
}

// Run executes every stage on in. The first failing stage aborts the run
// and its error is returned unchanged, so callers can branch with errors.Is
// on plan.ErrInvalidConfiguration, glue.ErrGluingInfeasible and
// tally.ErrUnassignedDistrict.
func (p *Pipeline) Run(ctx context.Context, in *dataio.Inputs, params Params) (*Report, error) {
	rep := &Report{RunID: uuid.NewString()}
	log := p.logger.With(zap.String("run_id", rep.RunID))
	log.Info("run started",
		zap.Int("units", len(in.Units)),
		zap.Int("num_districts", params.NumDistricts),
		zap.Ints("target_sizes", params.Targets),
		zap.Int64("seed", params.Seed),
	)

	err := p.stage(log, StageValidate, func() error {
		return plan.Validate(in.Units, in.Assignment, params.Targets, params.NumDistricts)
	})
	if err != nil {
		return nil, err
	}

	err = p.stage(log, StageLift, func() (err error) {
		rep.DistrictGraph, err = lift.Lift(in.Adjacency, in.Assignment, params.NumDistricts)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Debug("district graph built", zap.Int("edges", rep.DistrictGraph.EdgeCount()))
	if isolated := isolatedDistricts(rep.DistrictGraph); len(isolated) > 0 {
		log.Warn("districts without neighbors", zap.Ints("districts", isolated))
	}

	err = p.stage(log, StageGlue, func() (err error) {
		if rep.Gluing, err = p.glue(ctx, log, rep.DistrictGraph, params); err != nil {
			return err
		}
		return glue.Verify(rep.DistrictGraph, params.Targets, rep.Gluing.DistrictToSuper)
	})
	if err != nil {
		return nil, err
	}

	var totals map[int]tally.Totals
	err = p.stage(log, StageAggregate, func() (err error) {
		if totals, err = tally.Aggregate(in.Units, in.Assignment, rep.Gluing.DistrictToSuper); err != nil {
			return err
		}
		rep.UnitToSuper, err = plan.Compose(in.Assignment, rep.Gluing.DistrictToSuper)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = p.stage(log, StageAllocate, func() error {
		seated, err := tally.Allocate(totals, params.Targets, tally.WithRounding(params.Rounding))
		if err != nil {
			return err
		}
		totals = seated
		rep.Totals = tally.Sorted(seated)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var baseline map[int]tally.DistrictTotals
	err = p.stage(log, StageBaseline, func() (err error) {
		baseline, err = tally.Baseline(in.Units, in.Assignment)
		rep.Baseline = tally.SortedDistricts(baseline)
		return err
	})
	if err != nil {
		return nil, err
	}

	rep.Summary = tally.Summarize(totals, baseline)
	if p.collector != nil {
		p.collector.ObserveSeats(rep.Summary)
	}
	for _, t := range rep.Totals {
		log.Info("super-district",
			zap.Int("id", t.SuperDistrictID),
			zap.Ints("districts", t.Districts),
			zap.Int("seats", t.Seats),
			zap.Float64("share_a", t.ShareA),
			zap.Int("seats_a", t.SeatsA),
			zap.Int("seats_b", t.SeatsB),
		)
	}
	log.Info("run finished",
		zap.Int("seats_a", rep.Summary.SeatsA),
		zap.Int("seats_b", rep.Summary.SeatsB),
		zap.Int("baseline_seats_a", rep.Summary.BaselineSeatsA),
		zap.Int("baseline_seats_b", rep.Summary.BaselineSeatsB),
	)

	return rep, nil
}

// stage times fn, logs its outcome and records the duration.
func (p *Pipeline) stage(log *zap.Logger, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	if p.collector != nil {
		p.collector.ObserveStage(name, elapsed)
	}
	if err != nil {
		log.Error("stage failed", zap.String("stage", name), zap.Duration("elapsed", elapsed), zap.Error(err))
		return err
	}
	log.Info("stage done", zap.String("stage", name), zap.Duration("elapsed", elapsed))

	return nil
}

// glue runs the engine with logging and metrics wired into its hook.
func (p *Pipeline) glue(ctx context.Context, log *zap.Logger, g *core.Graph, params Params) (*glue.Result, error) {
	opts := []glue.Option{
		glue.WithContext(ctx),
		glue.WithOnAttempt(func(r glue.AttemptReport) {
			if !r.OK {
				log.Debug("attempt failed",
					zap.Int("attempt", r.Attempt),
					zap.Int64("seed", r.Seed),
					zap.Int("super_district", r.SuperDistrict),
					zap.Stringer("reason", r.Reason),
				)
			}
			if p.collector != nil {
				p.collector.ObserveAttempt(r)
			}
		}),
	}
	if params.MaxAttempts > 0 {
		opts = append(opts, glue.WithMaxAttempts(params.MaxAttempts))
	}
	if params.Workers > 0 {
		opts = append(opts, glue.WithWorkers(params.Workers))
	}
	if params.Strict {
		opts = append(opts, glue.WithStrictFeasibility())
	}

	res, err := glue.Glue(g, params.Targets, params.NumDistricts, params.Seed, opts...)
	if p.collector != nil {
		var ie *glue.InfeasibleError
		switch {
		case err == nil:
			p.collector.ObserveRun("ok", res.Attempt+1)
		case errors.As(err, &ie):
			p.collector.ObserveRun("infeasible", ie.Attempts)
		default:
			p.collector.ObserveRun("error", 0)
		}
	}
	if err != nil {
		return nil, err
	}
	log.Info("gluing succeeded", zap.Int("attempt", res.Attempt), zap.Int64("attempt_seed", res.Seed))

	return res, nil
}

// isolatedDistricts lists the districts of g with no neighbors, ascending.
// Such a district can only be glued into a super-district of size 1.
func isolatedDistricts(g *core.Graph) []int {
	var out []int
	for _, d := range g.Vertices() {
		if deg, err := g.Degree(d); err == nil && deg == 0 {
			out = append(out, d)
		}
	}

	return out
}
