package sim

import (
	"math/rand"
)

// Sampler draws one value in minutes from a distribution.
type Sampler interface {
	// Sample returns the next value. Implementations that need randomness
	// draw from rng; fixed samplers leave the stream untouched.
	Sample(rng *rand.Rand) float64
}

// Exponential samples exponentially-distributed minutes with the given
// rate (events per minute). Models voter inter-arrival gaps and the
// voting duration of split-ticket voters.
type Exponential struct {
	Rate float64 // events per minute
}

func (s Exponential) Sample(rng *rand.Rand) float64 {
	return rng.ExpFloat64() / s.Rate
}

// Fixed always returns the same value and consumes no draw.
// Straight-ticket ballots take a constant time to fill in.
type Fixed float64

func (s Fixed) Sample(_ *rand.Rand) float64 {
	return float64(s)
}
