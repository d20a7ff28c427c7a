// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, GraphOption, sentinel errors and the NewGraph constructor.
// Policy:
//   - Vertices are plain integers; the graph is an arena of ids plus one neighbor set per id.
//   - Undirected and simple: no self-loops, duplicate edges collapse into the set.
//   - A single sync.RWMutex guards the arena, so a built graph can be shared read-only.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNegativeOrder indicates WithVertexRange received n < 0.
	ErrNegativeOrder = errors.New("core: negative vertex range")
)

// Edge is an undirected connection between two vertices.
// Edges returned by the graph are normalized so that From < To.
type Edge struct {
	From int
	To   int
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithVertexRange pre-populates the vertices 0..n-1.
// District graphs are built this way so that isolated districts are still present.
// A negative n is recorded and surfaces from NewGraphE as ErrNegativeOrder;
// NewGraph simply ignores it.
func WithVertexRange(n int) GraphOption {
	return func(g *Graph) {
		if n < 0 {
			g.err = ErrNegativeOrder
			return
		}
		for i := 0; i < n; i++ {
			if _, ok := g.adjacency[i]; !ok {
				g.adjacency[i] = make(map[int]struct{})
			}
		}
	}
}

// WithVertices pre-populates the given vertex ids (duplicates are ignored).
func WithVertices(ids ...int) GraphOption {
	return func(g *Graph) {
		for _, id := range ids {
			if _, ok := g.adjacency[id]; !ok {
				g.adjacency[id] = make(map[int]struct{})
			}
		}
	}
}

// Graph is an undirected simple graph over integer vertex ids.
//
// adjacency[u] is the neighbor set of u; an edge {u,v} is stored in both
// adjacency[u] and adjacency[v]. edgeCount counts undirected edges once.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	adjacency map[int]map[int]struct{}
	edgeCount int

	// err records an option violation seen during construction.
	err error
}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(sum of option work).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adjacency: make(map[int]map[int]struct{})}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewGraphE is NewGraph that also reports option violations.
func NewGraphE(opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	if g.err != nil {
		return nil, g.err
	}

	return g, nil
}
