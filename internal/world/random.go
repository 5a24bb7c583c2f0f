package world

import (
	"math/rand"
	"time"
)

// Source supplies uniform random integers. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform integer in [0, n). n is always positive.
	Intn(n int) int
}

// NewSource returns a seeded source. A seed of 0 picks one from the clock.
// The seed actually used is returned so runs can be reproduced.
func NewSource(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// choose returns a uniformly selected element of a non-empty slice.
func choose(rng Source, ids []int) int {
	return ids[rng.Intn(len(ids))]
}
