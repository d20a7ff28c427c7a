// Package core provides the undirected, simple, thread-safe Graph used for
// both base-unit adjacency and district adjacency.
//
// The Graph G = (V,E) is an arena of integer vertex ids with one neighbor
// set per id:
//
//   - adjacency[u] = {v : {u,v} ∈ E}, mirrored for every edge
//   - no self-loops (AddEdge(v,v) → ErrLoopNotAllowed)
//   - duplicate edges collapse (AddEdge is idempotent)
//   - one sync.RWMutex guards all state, so a finished graph may be read
//     from many goroutines at once
//
// Why integer ids?
//
//	Base units and districts are identified by integers in every input the
//	gluing pipeline consumes, and district ids form the dense range 0..N-1.
//	WithVertexRange(N) creates that range up front so a district without
//	neighbors is still a vertex.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id int)                      // O(1)
//	HasVertex(id int) bool                 // O(1)
//	Vertices() []int                       // O(V·log V), ascending
//	VertexCount() int                      // O(1)
//	Degree(id int) (int, error)            // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v int) error                // O(1), idempotent
//	HasEdge(u, v int) bool                 // O(1)
//	Edges() []Edge                         // O(E·log E), From < To
//	EdgeCount() int                        // O(1)
//
//	// Query
//	NeighborIDs(id int) ([]int, error)     // O(d·log d), ascending
//	EachNeighbor(id int, fn) error         // O(d), unordered
//
// IDSet is the companion set type used by the contiguity and gluing code.
//
// Quick ASCII example:
//
//	0───1───2───3
//
// is NewGraph(WithVertexRange(4)) plus AddEdge(0,1), AddEdge(1,2), AddEdge(2,3).
package core
