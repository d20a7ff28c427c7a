package contiguity

import (
	"slices"

	"github.com/katalvlaran/superdistricts/bfs"
	"github.com/katalvlaran/superdistricts/core"
)

// IsConnected reports whether the vertices of set form one connected piece
// of g when only edges with both endpoints in set are followed.
// The empty set and singletons are connected. A member absent from g makes
// the set disconnected unless it is the only member.
func IsConnected(g *core.Graph, set core.IDSet) bool {
	if set.Len() <= 1 {
		return true
	}
	if g == nil {
		return false
	}
	if set.Len() == 2 {
		ids := set.Sorted()
		return g.HasEdge(ids[0], ids[1])
	}
	start, _ := set.Min()
	res, err := bfs.BFS(g, start, bfs.WithinSet(set))
	if err != nil {
		return false
	}

	return len(res.Order) == set.Len()
}

// Components partitions set into connected components of the subgraph of g
// induced by set. Each component is sorted ascending; components are ordered
// by their smallest member. Members absent from g form singleton components.
func Components(g *core.Graph, set core.IDSet) [][]int {
	comps := make([][]int, 0)
	seen := make(core.IDSet, set.Len())
	for _, id := range set.Sorted() {
		if seen.Has(id) {
			continue
		}
		comp := []int{id}
		if g != nil {
			if res, err := bfs.BFS(g, id, bfs.WithinSet(set)); err == nil {
				comp = res.Order
			}
		}
		for _, v := range comp {
			seen.Add(v)
		}
		comp = slices.Clone(comp)
		slices.Sort(comp)
		comps = append(comps, comp)
	}

	return comps
}

// componentSizes returns the sizes of Components(g, set) in the same order.
func componentSizes(g *core.Graph, set core.IDSet) []int {
	comps := Components(g, set)
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}

	return sizes
}
