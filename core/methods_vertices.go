// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Vertices/VertexCount/Degree.
// Determinism:
//   - Vertices() returns ids sorted ascending.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "slices"

// AddVertex inserts id if absent. Re-adding an existing id is a no-op.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)
}

// addVertexLocked assumes the write lock is held.
func (g *Graph) addVertexLocked(id int) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int]struct{})
	}
}

// HasVertex reports whether id is present.
//
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]
	return ok
}

// Vertices returns all vertex ids sorted ascending.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// VertexCount returns the number of vertices.
//
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Degree returns the number of distinct neighbors of id.
// Returns ErrVertexNotFound if id is absent.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbrs), nil
}
