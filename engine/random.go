package engine

import (
	"math/rand/v2"
	"time"
)

// ResolveSeed returns seed, or a time-based seed when seed is 0. Hosts resolve once and
// derive every other source from the result so a logged seed replays the whole run
func ResolveSeed(seed uint64) uint64 {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return seed
}

// NewRand creates the seedable source used by spawning and particle bursts
// Seed 0 picks a time-based seed
func NewRand(seed uint64) *rand.Rand {
	seed = ResolveSeed(seed)
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}
