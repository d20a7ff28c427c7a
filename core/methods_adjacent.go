// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, EachNeighbor).
// Determinism:
//   - NeighborIDs() returns ids sorted ascending.
//   - EachNeighbor() visits in map order; use it only where order cannot leak into results.
// Concurrency:
//   - Read lock for the whole call.

package core

import "slices"

// NeighborIDs returns the neighbors of id sorted ascending.
// Returns ErrVertexNotFound if id is absent.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]int, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	slices.Sort(out)

	return out, nil
}

// EachNeighbor calls fn for every neighbor of id until fn returns false.
// Iteration order is unspecified. fn must not mutate g.
// Returns ErrVertexNotFound if id is absent.
//
// Complexity: O(d).
func (g *Graph) EachNeighbor(id int, fn func(nbr int) bool) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return ErrVertexNotFound
	}
	for v := range nbrs {
		if !fn(v) {
			return nil
		}
	}

	return nil
}
