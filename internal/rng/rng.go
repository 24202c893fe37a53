// Package rng provides the deterministic generator behind daily puzzles.
package rng

const (
	multiplier = 9301
	increment  = 49297
	modulus    = 233280
)

// RNG is a linear congruential generator with a small fixed modulus.
// Every step stays well inside int64, so a given seed yields the same
// sequence on every platform.
type RNG struct {
	seed int64
}

// New returns a generator starting from seed. The seed is stored as
// given; each step folds negative values into the modulus range.
func New(seed int64) *RNG {
	return &RNG{seed: seed}
}

// Next advances the state and returns a value in [0, 1).
func (r *RNG) Next() float64 {
	r.seed = step(r.seed)
	return float64(r.seed) / modulus
}

// Intn returns a value in [0, n). It panics if n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}
	return int(r.Next() * float64(n))
}

// Seed reports the current state.
func (r *RNG) Seed() int64 {
	return r.seed
}

func step(seed int64) int64 {
	next := (seed*multiplier + increment) % modulus
	if next < 0 {
		next += modulus
	}
	return next
}
