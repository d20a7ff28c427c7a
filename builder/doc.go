// Package builder provides deterministic fixtures for the gluing pipeline:
// graph topologies over integer ids and complete synthetic datasets.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, id scheme and unit generator.
//   - Vertex-id schemes (IDFn):
//     – DefaultIDFn:       identity (0,1,2,…).
//     – OffsetIDFn:        k, k+1, … for composing disjoint pieces.
//     – StrideIDFn:        base, base+s, base+2s, ….
//   - Topologies (Constructor):
//     – Path, Cycle, Star, Complete, Grid, Isolated, RandomSparse.
//   - Unit generators (UnitFn):
//     – DefaultUnitFn, ConstantUnitFn, UniformUnitFn.
//   - Datasets:
//     – GridDataset:       units on a grid, tiled into rectangular districts.
//
// Guarantees:
//
//   - Same options, seed and constructor order produce identical output.
//   - Invalid parameters return wrapped sentinels (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, ErrBadSize, ErrOptionViolation).
//   - Constructors are idempotent on an existing graph: core collapses
//     repeated vertices and edges.
package builder
