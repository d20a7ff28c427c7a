package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/superdistricts/builder"
	"github.com/katalvlaran/superdistricts/config"
	"github.com/katalvlaran/superdistricts/dataio"
)

type synthFlags struct {
	rows, cols           int
	blockRows, blockCols int
	seed                 int64
	minPop, maxPop       int64
	shareLo, shareHi     float64
	targets              []int
	out                  string
}

func newSynthCmd() *cobra.Command {
	var f synthFlags
	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Write a synthetic grid dataset and a matching run.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return f.run(cmd)
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&f.rows, "rows", 4, "unit grid rows")
	fs.IntVar(&f.cols, "cols", 7, "unit grid columns")
	fs.IntVar(&f.blockRows, "block-rows", 2, "unit rows per district")
	fs.IntVar(&f.blockCols, "block-cols", 1, "unit columns per district")
	fs.Int64Var(&f.seed, "seed", 1, "generator seed")
	fs.Int64Var(&f.minPop, "min-pop", 500, "minimum unit population")
	fs.Int64Var(&f.maxPop, "max-pop", 1500, "maximum unit population")
	fs.Float64Var(&f.shareLo, "share-lo", 0.3, "minimum party A share per unit")
	fs.Float64Var(&f.shareHi, "share-hi", 0.7, "maximum party A share per unit")
	fs.IntSliceVar(&f.targets, "targets", []int{5, 5, 4}, "super-district sizes written to run.yaml")
	fs.StringVarP(&f.out, "out", "o", "data", "output directory")

	return cmd
}

func (f *synthFlags) run(cmd *cobra.Command) error {
	if f.minPop < 0 || f.maxPop < f.minPop || f.shareLo < 0 || f.shareHi > 1 || f.shareHi < f.shareLo {
		return fmt.Errorf("synth: invalid population or share range")
	}
	ds, err := builder.GridDataset(f.rows, f.cols, f.blockRows, f.blockCols,
		builder.WithSeed(f.seed),
		builder.WithUniformUnits(f.minPop, f.maxPop, f.shareLo, f.shareHi),
	)
	if err != nil {
		return err
	}

	err = dataio.CreateFile(f.out, dataio.FileUnits, func(fh *os.File) error {
		return dataio.WriteUnits(fh, ds.Units)
	})
	if err != nil {
		return err
	}
	err = dataio.CreateFile(f.out, dataio.FileAdjacency, func(fh *os.File) error {
		return dataio.WriteAdjacency(fh, ds.Adjacency)
	})
	if err != nil {
		return err
	}
	err = dataio.CreateFile(f.out, dataio.FileAssignment, func(fh *os.File) error {
		return dataio.WriteMapping(fh, ds.Assignment)
	})
	if err != nil {
		return err
	}

	cfg := config.Default()
	cfg.Inputs = config.Inputs{
		Units:      filepath.Join(f.out, dataio.FileUnits),
		Adjacency:  filepath.Join(f.out, dataio.FileAdjacency),
		Assignment: filepath.Join(f.out, dataio.FileAssignment),
	}
	cfg.Outputs.Dir = filepath.Join(f.out, "outputs")
	cfg.NumDistricts = ds.NumDistricts
	cfg.TargetSizes = f.targets
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("synth: targets do not fit %d districts: %w", ds.NumDistricts, err)
	}
	err = dataio.CreateFile(f.out, "run.yaml", func(fh *os.File) error {
		enc := yaml.NewEncoder(fh)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d units in %d districts to %s\n", len(ds.Units), ds.NumDistricts, f.out)

	return nil
}
