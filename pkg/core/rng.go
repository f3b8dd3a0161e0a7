package core

import "math/rand/v2"

// Source is the minimal random draw contract used by generation code.
// Implementations return a value in [0, n).
type Source interface {
	IntN(n int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Range returns a random int in [min, max) using the RNG.
func (r *RNG) Range(min, max int) int { return Range(r, min, max) }

// Range draws an int in [min, max) from src. When max <= min it returns min
// without consuming a draw.
func Range(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.IntN(max-min)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
