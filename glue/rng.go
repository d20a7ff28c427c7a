// RNG utilities for the attempt loop.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every attempt creates its own.
package glue

import "math/rand"

// attemptSeed is the derived seed of attempt a. The base seed is used
// verbatim, zero included, so consecutive attempts never share a stream.
func attemptSeed(seed int64, a int) int64 {
	return seed + int64(a)
}

// rngFor returns the generator of attempt a.
func rngFor(seed int64, a int) *rand.Rand {
	return rand.New(rand.NewSource(attemptSeed(seed, a)))
}

// pick returns a uniformly random element of a non-empty sorted slice.
func pick(rng *rand.Rand, sorted []int) int {
	return sorted[rng.Intn(len(sorted))]
}
