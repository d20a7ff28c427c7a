// Package contiguity answers connectivity questions about subsets of a
// district graph.
//
// What:
//
//   - IsConnected(g, set)            – is the subgraph induced by set connected?
//   - Components(g, set)             – connected components of that subgraph.
//   - CanSatisfy(g, unused, sizes)   – fast necessary check used for pruning.
//   - CanPack(g, unused, sizes)      – stronger necessary check (exact packing).
//
// Traversal is the bfs walker restricted with bfs.WithinSet, started from the
// smallest member, so results never depend on map iteration order.
//
// Neither feasibility check is sufficient. A state they accept can still fail
// later because growth is randomized; callers must keep a retry path.
//
// None of the functions mutate g.
package contiguity
