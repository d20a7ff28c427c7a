// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns normalized edges (From < To) sorted by (From, To).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"cmp"
	"slices"
)

// AddEdge connects u and v, creating either endpoint if absent.
//
// Adding an edge that already exists is a no-op: neighbor sets collapse
// duplicates, which is exactly what lifting unit adjacency to districts needs.
// Returns ErrLoopNotAllowed if u == v.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(u)
	g.addVertexLocked(v)
	if _, ok := g.adjacency[u][v]; ok {
		return nil
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether u and v are adjacent. Missing vertices yield false.
//
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[u][v]
	return ok
}

// Edges returns every undirected edge once, normalized to From < To and
// sorted by (From, To).
//
// Complexity: O(V + E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	slices.SortFunc(out, func(a, b Edge) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})

	return out
}

// EdgeCount returns the number of undirected edges.
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
