package board

import "math/rand/v2"

// Source is the randomness the engine draws from. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// NewSource returns a deterministic PCG generator for seed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// coin returns -1 or +1 with equal probability.
func coin(rng Source) int {
	if rng.IntN(2) == 0 {
		return -1
	}
	return 1
}
