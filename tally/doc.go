// Package tally turns a gluing result into vote totals and seats.
//
//	Aggregate  units → super-district totals (population, votes, share)
//	Allocate   totals + seat targets → SeatsA / SeatsB per super-district
//	Baseline   units → per-district winner-take-all totals
//	Summarize  statewide seats under both schemes
//
// All functions are pure: inputs are never mutated and every call with the
// same inputs returns equal values. Sums are exact int64 arithmetic; ShareA
// is informational and never feeds back into seat counts.
package tally
