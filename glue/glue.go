package glue

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/superdistricts/contiguity"
	"github.com/katalvlaran/superdistricts/core"
	"github.com/katalvlaran/superdistricts/plan"
)

// Glue partitions districts 0..numDistricts-1 of g into len(targets)
// connected groups, group i holding exactly targets[i] districts.
//
// Configuration is validated before any attempt. Attempt a draws from
// rand.NewSource(seed+a); the first successful attempt is returned. When the
// budget is exhausted the error is an *InfeasibleError carrying the last
// failure.
//
// Complexity: O(MaxAttempts · N · (N + E)) in the worst case; each growth
// step sorts the frontier and each commit runs one BFS plus the remainder
// check.
func Glue(g *core.Graph, targets plan.TargetSizes, numDistricts int, seed int64, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := targets.Validate(numDistricts); err != nil {
		return nil, err
	}
	if err := checkVertices(g, numDistricts); err != nil {
		return nil, err
	}

	feasible := feasibleFn(contiguity.CanSatisfy)
	if o.Strict {
		feasible = contiguity.CanPack
	}
	tgt := []int(targets)

	var last AttemptReport
	for base := 0; base < o.MaxAttempts; base += o.Workers {
		if err := o.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("glue: stopped before attempt %d: %w", base, err)
		}
		size := min(o.Workers, o.MaxAttempts-base)
		batch, err := runBatch(o.Ctx, g, tgt, numDistricts, seed, base, size, feasible)
		if err != nil {
			return nil, fmt.Errorf("glue: stopped before attempt %d: %w", base, err)
		}
		for _, out := range batch {
			o.OnAttempt(out.report)
			if out.report.OK {
				return newResult(out), nil
			}
			last = out.report
		}
	}

	return nil, &InfeasibleError{Attempts: o.MaxAttempts, Last: last}
}

// runBatch runs attempts base..base+size-1 and returns their outcomes in
// attempt order. A single-attempt batch runs on the calling goroutine.
func runBatch(ctx context.Context, g *core.Graph, targets []int, n int, seed int64, base, size int, feasible feasibleFn) ([]outcome, error) {
	out := make([]outcome, size)
	if size == 1 {
		out[0] = attempt(g, targets, n, seed, base, feasible)
		return out, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < size; i++ {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = attempt(g, targets, n, seed, base+i, feasible)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// checkVertices requires the vertex set of g to be exactly 0..n-1.
// Vertices is sorted and duplicate-free, so checking the count and both
// ends is enough.
func checkVertices(g *core.Graph, n int) error {
	vs := g.Vertices()
	if len(vs) != n {
		return fmt.Errorf("%w: district graph has %d vertices, want %d",
			plan.ErrInvalidConfiguration, len(vs), n)
	}
	if n > 0 && (vs[0] != 0 || vs[n-1] != n-1) {
		return fmt.Errorf("%w: district ids span [%d,%d], want [0,%d]",
			plan.ErrInvalidConfiguration, vs[0], vs[n-1], n-1)
	}

	return nil
}

func newResult(out outcome) *Result {
	r := &Result{
		DistrictToSuper: make(map[int]int),
		Groups:          out.groups,
		Attempt:         out.report.Attempt,
		Seed:            out.report.Seed,
	}
	for s, group := range out.groups {
		for _, d := range group {
			r.DistrictToSuper[d] = s
		}
	}

	return r
}
