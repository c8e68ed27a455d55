// Package core - deterministic random source for unset edge weights.
//
// Goals:
//   - Determinism: same seed ⇒ identical lazily-filled weights.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe, which matches the Graph contract.
package core

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// Bounds of lazily generated edge weights, inclusive.
const (
	MinRandomWeight int64 = 1
	MaxRandomWeight int64 = 10
)

// WeightSource produces pseudo-random integers for unset edge weights.
// *rand.Rand satisfies it.
type WeightSource interface {
	// Intn returns a value in [0, n). n is always > 0.
	Intn(n int) int
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// randomWeight draws a weight in [MinRandomWeight, MaxRandomWeight].
func randomWeight(src WeightSource) int64 {
	span := int(MaxRandomWeight - MinRandomWeight + 1)

	return MinRandomWeight + int64(src.Intn(span))
}
