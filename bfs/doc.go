// Package bfs provides breadth-first search over a core.Graph.
//
// A walk returns the visit order and the edge distance of every reached
// vertex. WithinSet confines it to a vertex subset, which is how district
// groups are tested for contiguity: a group is connected iff a walk
// restricted to the group reaches every member.
//
//	res, err := bfs.BFS(g, start, bfs.WithinSet(group))
//	connected := err == nil && len(res.Order) == len(group)
//
// core.Graph.NeighborIDs is sorted, so the visit order is deterministic.
// Concurrent walks over the same graph are safe; each holds its own state.
package bfs
