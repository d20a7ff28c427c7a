// Package lift derives the district adjacency graph from base-unit adjacency
// and a baseline unit→district assignment.
//
// Two districts are adjacent iff some unit of the first touches some unit
// of the second. Every district 0..N-1 is a vertex of the result, including
// districts with no neighbors.
//
// Complexity: O(V_base + E_base). The result is built once per run and is
// read-only afterwards.
package lift

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/superdistricts/core"
	"github.com/katalvlaran/superdistricts/plan"
)

// Sentinel errors for lifting.
var (
	// ErrGraphNil is returned when the base adjacency graph is nil.
	ErrGraphNil = errors.New("lift: base graph is nil")

	// ErrUnassignedUnit is returned when a unit on a base edge has no district.
	ErrUnassignedUnit = errors.New("lift: unit missing from assignment")
)

// Lift builds the district graph for numDistricts districts.
//
// For every base edge {u,v} with a[u] != a[v], the district edge
// {a[u], a[v]} is added; duplicates collapse. Units assigned to the same
// district contribute nothing.
//
// Errors (malformed input only):
//   - ErrGraphNil if base is nil.
//   - ErrUnassignedUnit if an edge endpoint is absent from a.
//   - plan.ErrInvalidConfiguration if a district id is outside [0, numDistricts)
//     or numDistricts is negative.
func Lift(base *core.Graph, a plan.Assignment, numDistricts int) (*core.Graph, error) {
	if base == nil {
		return nil, ErrGraphNil
	}
	districts, err := core.NewGraphE(core.WithVertexRange(numDistricts))
	if err != nil {
		return nil, fmt.Errorf("%w: numDistricts=%d", plan.ErrInvalidConfiguration, numDistricts)
	}

	for _, e := range base.Edges() {
		du, err := districtOf(a, e.From, numDistricts)
		if err != nil {
			return nil, err
		}
		dv, err := districtOf(a, e.To, numDistricts)
		if err != nil {
			return nil, err
		}
		if du == dv {
			continue
		}
		// du != dv, so AddEdge cannot report a loop.
		_ = districts.AddEdge(du, dv)
	}

	return districts, nil
}

// districtOf resolves and range-checks the district of unit u.
func districtOf(a plan.Assignment, u, numDistricts int) (int, error) {
	d, ok := a[u]
	if !ok {
		return 0, fmt.Errorf("%w: unit %d", ErrUnassignedUnit, u)
	}
	if d < 0 || d >= numDistricts {
		return 0, fmt.Errorf("%w: unit %d assigned to district %d outside [0,%d)",
			plan.ErrInvalidConfiguration, u, d, numDistricts)
	}

	return d, nil
}
