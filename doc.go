// Package superdistricts glues the single-member districts of a baseline
// plan into multi-member super-districts, in the manner of the Fair
// Representation Act, and compares proportional seat allocation against
// winner-take-all.
//
// The pipeline, one package per stage:
//
//	dataio/      units.csv, adjacency.csv, baseline_plan.json in; CSV/JSON out
//	plan/        shared input types and validation
//	lift/        unit adjacency → district adjacency
//	contiguity/  connectivity and feasibility checks on district subsets
//	glue/        randomized seed-and-grow partitioning with bounded retries
//	tally/       vote aggregation, proportional seats, baseline winners
//	pipeline/    stages wired together with logging and metrics
//
// Supporting packages:
//
//	core/        integer-id undirected graph, thread-safe
//	bfs/         breadth-first traversal with hooks and set restriction
//	builder/     deterministic topologies and synthetic grid datasets
//	config/      YAML configuration with FRA_* environment overrides
//	metrics/     Prometheus collectors written as text exposition
//
// A 2×2 block of districts:
//
//	    0───1
//	    │   │
//	    2───3
//
// glued into sizes [2 2] yields {0,1},{2,3} or {0,2},{1,3}; never {0,3}.
//
//	go install github.com/katalvlaran/superdistricts/cmd/superdistricts@latest
package superdistricts
