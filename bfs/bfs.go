package bfs

import (
	"fmt"

	"github.com/katalvlaran/superdistricts/core"
)

// BFS walks g breadth-first from start. Neighbors are taken in ascending
// id order, so Order is reproducible for a given graph.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input.
//
// Complexity: O(V + E·log d) over the vertices reachable within the set.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	capacity := g.VertexCount()
	if o.keep != nil {
		capacity = len(o.keep)
	}
	res := &Result{
		Order: make([]int, 0, capacity),
		Depth: make(map[int]int, capacity),
	}
	res.Depth[start] = 0
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, cur)

		// cur was reached through g, so it is present.
		nbrs, _ := g.NeighborIDs(cur)
		for _, nbr := range nbrs {
			if _, seen := res.Depth[nbr]; seen {
				continue
			}
			if o.keep != nil {
				if _, ok := o.keep[nbr]; !ok {
					continue
				}
			}
			res.Depth[nbr] = res.Depth[cur] + 1
			queue = append(queue, nbr)
		}
	}

	return res, nil
}
