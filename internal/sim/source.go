package sim

import (
	"math/rand/v2"
	"time"
)

// Source supplies uniform draws in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// streamSalt decorrelates the second PCG word from the seed.
const streamSalt = 0x9e3779b97f4a7c15

// NewSource returns a deterministic random stream for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^streamSalt))
}

// RunSeed derives the seed of an independent stream for run i of a batch.
func RunSeed(base uint64, i int) uint64 {
	return base + uint64(i)
}

// playoffSalt separates a session's playoff stream from its regular-season stream.
const playoffSalt = 0xbf58476d1ce4e5b9

// PlayoffSeed derives the playoff stream seed from a season seed, so playoffs simulated
// later in a separate step stay reproducible from the one seed.
func PlayoffSeed(seed uint64) uint64 {
	return seed ^ playoffSalt
}

// TimeSeed returns a seed from the wall clock for callers that did not ask for one.
func TimeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
