package sim

import "math/rand"

// Rand is the single source of randomness for a run.
// *rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// NewRand returns a seeded source.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// coin returns true with probability one half.
func coin(rng Rand) bool {
	return rng.Float64() < 0.5
}

// signed returns v or -v with equal probability.
func signed(rng Rand, v float64) float64 {
	if coin(rng) {
		return v
	}
	return -v
}
