package game

import "math/rand"

// Rand is the random source used for pipe placement and particle spread.
// Float64 returns a value in [0, 1).
type Rand interface {
	Float64() float64
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
