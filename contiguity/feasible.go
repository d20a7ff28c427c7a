package contiguity

import (
	"slices"

	"github.com/katalvlaran/superdistricts/core"
)

// CanSatisfy is the pruning check run after each super-district is committed.
//
// With no remaining targets the state is feasible iff unused is empty.
// Otherwise the components of unused must have the same total size as the
// remaining targets, and the largest component must hold the largest target.
//
// A false result proves the state cannot be completed. A true result proves
// nothing.
func CanSatisfy(g *core.Graph, unused core.IDSet, remaining []int) bool {
	if len(remaining) == 0 {
		return unused.Len() == 0
	}
	sizes := componentSizes(g, unused)
	if len(sizes) == 0 {
		return false
	}

	return sum(sizes) == sum(remaining) && slices.Max(sizes) >= slices.Max(remaining)
}

// CanPack is a stricter form of CanSatisfy: every remaining target must fit
// wholly inside one component and every component must be filled exactly,
// since a super-district cannot span two components.
//
// Targets are placed largest first into component capacities by
// backtracking; capacities of equal value are tried once per level.
// Still a necessary condition only: a component may have the right size yet
// no contiguous split into the required pieces.
func CanPack(g *core.Graph, unused core.IDSet, remaining []int) bool {
	if len(remaining) == 0 {
		return unused.Len() == 0
	}
	caps := componentSizes(g, unused)
	if sum(caps) != sum(remaining) {
		return false
	}
	targets := slices.Clone(remaining)
	slices.SortFunc(targets, func(a, b int) int { return b - a })
	if targets[len(targets)-1] <= 0 {
		return false
	}
	if slices.Max(caps) < targets[0] {
		return false
	}

	return pack(targets, caps)
}

// pack places targets[0] into some capacity and recurses.
// Sums are equal on entry, so when targets run out every capacity is zero.
func pack(targets, caps []int) bool {
	if len(targets) == 0 {
		return true
	}
	t := targets[0]
	tried := make(map[int]struct{}, len(caps))
	for i, c := range caps {
		if c < t {
			continue
		}
		if _, dup := tried[c]; dup {
			continue
		}
		tried[c] = struct{}{}
		caps[i] -= t
		ok := pack(targets[1:], caps)
		caps[i] += t
		if ok {
			return true
		}
	}

	return false
}

func sum(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}

	return s
}
