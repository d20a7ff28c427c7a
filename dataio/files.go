package dataio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/superdistricts/core"
	"github.com/katalvlaran/superdistricts/plan"
)

// Output file names inside the output directory.
const (
	FileSuperAssignment = "superdistrict_assignment.json"
	FileDistrictToSuper = "district_to_super.json"
	FileResults         = "fra_results.csv"
	FileBaseline        = "baseline_districts.csv"
	FileMetrics         = "metrics.prom"
)

// Input file names written by the synthetic generator.
const (
	FileUnits      = "units.csv"
	FileAdjacency  = "adjacency.csv"
	FileAssignment = "baseline_plan.json"
)

// Inputs is everything a run reads from disk.
type Inputs struct {
	Units      []plan.BaseUnit
	Adjacency  *core.Graph
	Assignment plan.Assignment
}

// LoadInputs reads the three input files. Every unit becomes a vertex of
// the adjacency graph, isolated or not.
func LoadInputs(unitsPath, adjacencyPath, assignmentPath string) (*Inputs, error) {
	in := &Inputs{}

	err := withFile(unitsPath, func(f *os.File) (err error) {
		in.Units, err = ReadUnits(f)
		return err
	})
	if err != nil {
		return nil, err
	}

	ids := make([]int, len(in.Units))
	for i, u := range in.Units {
		ids[i] = u.ID
	}
	err = withFile(adjacencyPath, func(f *os.File) (err error) {
		in.Adjacency, err = ReadAdjacency(f, ids...)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = withFile(assignmentPath, func(f *os.File) error {
		m, err := ReadMapping(f)
		in.Assignment = plan.Assignment(m)
		return err
	})
	if err != nil {
		return nil, err
	}

	return in, nil
}

// withFile opens path, runs fn and annotates any error with path.
func withFile(path string, fn func(*os.File) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("dataio: open %s: %w", path, err)
	}
	defer f.Close()

	if err := fn(f); err != nil {
		return fmt.Errorf("dataio: %s: %w", path, err)
	}

	return nil
}

// CreateFile creates dir/name (and dir) and runs fn on it. The file is
// closed before returning; a close error is reported.
func CreateFile(dir, name string, fn func(*os.File) error) (err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("dataio: mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataio: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("dataio: close %s: %w", path, cerr)
		}
	}()

	if err := fn(f); err != nil {
		return fmt.Errorf("dataio: write %s: %w", path, err)
	}

	return nil
}
