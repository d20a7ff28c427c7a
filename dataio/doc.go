// Package dataio reads the pipeline inputs and writes its outputs.
//
// Inputs:
//
//	units CSV       id,population,votes_a,votes_b
//	adjacency CSV   unit_a,unit_b          (one undirected edge per row)
//	plan JSON       {"<unit id>": <district id>, ...}
//
// Outputs:
//
//	superdistrict_assignment.json   {"<unit id>": <super id>}
//	district_to_super.json          {"<district id>": <super id>}
//	fra_results.csv                 superdistrict_id,total_seats,votes_a,votes_b,seats_a,seats_b,share_a,population
//	baseline_districts.csv          district_id,votes_a,votes_b,population,winner
//
// Readers work on io.Reader and report the 1-based line of a bad row wrapped
// around ErrMalformedRecord. Header columns may appear in any order.
package dataio
