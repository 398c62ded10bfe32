package game

import (
	"math/rand"
	"time"
)

// Rand is the random source used for spawning. *rand.Rand satisfies it.
type Rand interface {
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// NewRand returns a time-seeded source
func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// randint returns a value in [lo, hi], both ends included
func randint(r Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}
