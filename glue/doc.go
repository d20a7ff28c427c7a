// Package glue merges the districts of a baseline plan into contiguous
// super-districts of prescribed sizes.
//
// The engine is a randomized greedy partitioner driven by an explicit
// attempt loop:
//
//	for a := 0; a < MaxAttempts; a++ {
//	    rng := rand.New(rand.NewSource(seed + a))
//	    report := attempt(rng)    // grow one group per target, in order
//	    if report.OK { return }   // first success wins
//	}
//	return &InfeasibleError{...}
//
// Each attempt seeds a group with a uniformly random unused district, grows
// it through uniformly random unused neighbors until it reaches its target,
// checks it is connected and that the remainder can still be split, then
// commits it. Any failure only ends the attempt; the reason is recorded in
// an AttemptReport and passed to the OnAttempt hook.
//
// Determinism: random picks index into candidate lists sorted ascending, and
// every attempt owns its generator. For fixed inputs and seed the result is
// bit-identical, including under WithWorkers.
//
// Errors:
//
//	ErrGraphNil                  nil district graph
//	plan.ErrInvalidConfiguration targets or graph disagree with numDistricts
//	ErrOptionViolation           bad option value
//	ErrGluingInfeasible          budget exhausted (*InfeasibleError)
//	ctx.Err()                    cancelled between attempts
package glue
