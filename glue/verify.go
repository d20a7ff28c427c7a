package glue

import (
	"fmt"

	"github.com/katalvlaran/superdistricts/contiguity"
	"github.com/katalvlaran/superdistricts/core"
	"github.com/katalvlaran/superdistricts/plan"
)

// Verify checks a result against g and targets: every district 0..N-1 is
// assigned exactly once, group i has targets[i] members, and every group is
// connected in g. The pipeline runs it on every result before tallying.
func Verify(g *core.Graph, targets plan.TargetSizes, districtToSuper map[int]int) error {
	if g == nil {
		return ErrGraphNil
	}
	n := targets.Sum()
	if len(districtToSuper) != n {
		return fmt.Errorf("%w: %d districts assigned, want %d", ErrInvalidResult, len(districtToSuper), n)
	}

	groups := make([]core.IDSet, len(targets))
	for i := range groups {
		groups[i] = core.NewIDSet()
	}
	for d, s := range districtToSuper {
		if d < 0 || d >= n {
			return fmt.Errorf("%w: district %d outside [0,%d)", ErrInvalidResult, d, n)
		}
		if s < 0 || s >= len(targets) {
			return fmt.Errorf("%w: district %d mapped to unknown super-district %d", ErrInvalidResult, d, s)
		}
		groups[s].Add(d)
	}
	for i, grp := range groups {
		if grp.Len() != targets[i] {
			return fmt.Errorf("%w: super-district %d has %d districts, want %d",
				ErrInvalidResult, i, grp.Len(), targets[i])
		}
		if !contiguity.IsConnected(g, grp) {
			return fmt.Errorf("%w: super-district %d %v is not contiguous", ErrInvalidResult, i, grp.Sorted())
		}
	}

	return nil
}
