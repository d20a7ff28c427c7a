package glue

import (
	"github.com/katalvlaran/superdistricts/contiguity"
	"github.com/katalvlaran/superdistricts/core"
)

// feasibleFn is the remainder check run after each committed group.
type feasibleFn func(g *core.Graph, unused core.IDSet, remaining []int) bool

// outcome is the product of one attempt: its report and, on success, its groups.
type outcome struct {
	report AttemptReport
	groups [][]int
}

// attempt runs one randomized greedy pass. All state is local, so attempts
// may run concurrently over the same read-only graph.
func attempt(g *core.Graph, targets []int, n int, seed int64, a int, feasible feasibleFn) outcome {
	rng := rngFor(seed, a)
	rep := AttemptReport{Attempt: a, Seed: attemptSeed(seed, a)}
	fail := func(i int, r Reason) outcome {
		rep.SuperDistrict, rep.Reason = i, r
		return outcome{report: rep}
	}

	unused := core.RangeSet(n)
	groups := make([][]int, len(targets))
	for i, size := range targets {
		if unused.Len() == 0 {
			return fail(i, ReasonNoSeed)
		}
		start := pick(rng, unused.Sorted())
		unused.Remove(start)
		group := core.NewIDSet(start)

		// frontier holds the unused neighbors of group.
		frontier := core.NewIDSet()
		if !grow(g, start, unused, frontier) {
			return fail(i, ReasonNoCandidate)
		}
		for group.Len() < size {
			if frontier.Len() == 0 {
				return fail(i, ReasonNoCandidate)
			}
			next := pick(rng, frontier.Sorted())
			unused.Remove(next)
			frontier.Remove(next)
			group.Add(next)
			if !grow(g, next, unused, frontier) {
				return fail(i, ReasonNoCandidate)
			}
		}

		if !contiguity.IsConnected(g, group) {
			return fail(i, ReasonNotContiguous)
		}
		if !feasible(g, unused, targets[i+1:]) {
			return fail(i, ReasonInfeasibleRemainder)
		}
		groups[i] = group.Sorted()
	}

	rep.OK = true
	rep.SuperDistrict = len(targets)

	return outcome{report: rep, groups: groups}
}

// grow adds the unused neighbors of d to frontier. It reports false when d
// is not a vertex of g, which Glue rules out up front via checkVertices; the
// attempt then fails as if d had no candidates.
func grow(g *core.Graph, d int, unused, frontier core.IDSet) bool {
	err := g.EachNeighbor(d, func(nbr int) bool {
		if unused.Has(nbr) {
			frontier.Add(nbr)
		}
		return true
	})

	return err == nil
}
