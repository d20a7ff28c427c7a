package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/superdistricts/config"
	"github.com/katalvlaran/superdistricts/metrics"
	"github.com/katalvlaran/superdistricts/pipeline"
)

type runFlags struct {
	configPath  string
	seed        int64
	maxAttempts int
	workers     int
	strict      bool
	rounding    string
	outDir      string
	metrics     bool
	logLevel    string
}

func newRunCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Glue districts and allocate seats from a YAML configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			if err := f.apply(cmd, cfg); err != nil {
				return err
			}
			return runPipeline(cmd.Context(), cfg, cmd)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "run.yaml", "path to the run configuration")
	fs.Int64Var(&f.seed, "seed", 0, "base random seed (overrides config)")
	fs.IntVar(&f.maxAttempts, "max-attempts", 0, "gluing attempt budget (overrides config)")
	fs.IntVar(&f.workers, "workers", 0, "attempts run concurrently (overrides config)")
	fs.BoolVar(&f.strict, "strict", false, "use exact component packing as the feasibility check")
	fs.StringVar(&f.rounding, "rounding", "", "seat rounding: half-even or half-up (overrides config)")
	fs.StringVarP(&f.outDir, "out", "o", "", "output directory (overrides config)")
	fs.BoolVar(&f.metrics, "metrics", false, "write metrics.prom next to the results")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	return cmd
}

// apply copies explicitly set flags over cfg and re-validates it.
func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("max-attempts") {
		cfg.MaxAttempts = f.maxAttempts
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("strict") {
		cfg.StrictFeasibility = f.strict
	}
	if fs.Changed("rounding") {
		cfg.Rounding = f.rounding
	}
	if fs.Changed("out") {
		cfg.Outputs.Dir = f.outDir
	}
	if fs.Changed("metrics") {
		cfg.Metrics = f.metrics
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}

	return cfg.Validate()
}

func runPipeline(ctx context.Context, cfg *config.Config, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts := []pipeline.Option{pipeline.WithLogger(logger)}
	if cfg.Metrics {
		opts = append(opts, pipeline.WithCollector(metrics.NewCollector(metrics.DefaultNamespace)))
	}
	p := pipeline.New(opts...)

	rep, err := p.RunConfig(ctx, cfg)
	if err != nil {
		logger.Error("run failed", zap.Error(err))
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s: glued on attempt %d (seed %d)\n", rep.RunID, rep.Gluing.Attempt, rep.Gluing.Seed)
	for _, t := range rep.Totals {
		fmt.Fprintf(out, "  super-district %d: districts %v, %d seats, share A %.1f%% → A %d / B %d\n",
			t.SuperDistrictID, t.Districts, t.Seats, 100*t.ShareA, t.SeatsA, t.SeatsB)
	}
	s := rep.Summary
	fmt.Fprintf(out, "statewide: FRA A %d / B %d, baseline A %d / B %d\n",
		s.SeatsA, s.SeatsB, s.BaselineSeatsA, s.BaselineSeatsB)
	fmt.Fprintf(out, "outputs in %s\n", cfg.Outputs.Dir)

	return nil
}
