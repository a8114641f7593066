// sim/simulator.go
package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Simulate runs one election day at the precinct and returns every voter
// who cast a ballot, in arrival order, with booth start and departure
// times filled in.
//
// straightPct is the probability that a voter casts a straight-ticket
// ballot (a fixed duration of straightDuration minutes) instead of a
// split-ticket ballot (an exponential duration with rate
// p.VotingDurationRate). It is passed explicitly, rather than read from
// the precinct, so experiments can sweep the electorate mix without
// copying the precinct.
//
// All randomness comes from a single stream seeded with seed, consumed
// in a fixed order per voter: one classification draw, one duration
// draw for split-ticket voters only, then one inter-arrival draw.
// Changing this order changes every seeded result.
func (p Precinct) Simulate(straightPct, straightDuration float64, seed int64) ([]Voter, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid precinct: %w", err)
	}
	if err := validateFraction("straight-ticket share", straightPct); err != nil {
		return nil, err
	}
	if err := validateFinitePositive("straight-ticket duration", straightDuration); err != nil {
		return nil, err
	}

	rng := newRand(seed)
	voters := p.generateArrivals(rng, straightPct, straightDuration)
	if err := p.assignBooths(voters); err != nil {
		return nil, err
	}

	logrus.Debugf("precinct %q: %d of %d voters arrived before close (seed %d)",
		p.Name, len(voters), p.NumVoters, seed)
	return voters, nil
}

// generateArrivals draws candidate voters until the voter budget is
// spent or an arrival lands after closing time. A candidate whose
// arrival falls past closing is discarded, but its draws are still
// consumed, so the stream position stays a pure function of the seed
// and the accepted voters.
func (p Precinct) generateArrivals(rng *rand.Rand, straightPct, straightDuration float64) []Voter {
	gap := Exponential{Rate: p.ArrivalRate}
	splitDuration := Exponential{Rate: p.VotingDurationRate}
	straightDur := Fixed(straightDuration)

	voters := make([]Voter, 0, p.NumVoters)
	clock := 0.0
	for len(voters) < p.NumVoters {
		var duration float64
		if rng.Float64() < straightPct {
			duration = straightDur.Sample(rng)
		} else {
			duration = splitDuration.Sample(rng)
		}

		clock += gap.Sample(rng)
		if clock > p.MinutesOpen() {
			break
		}
		voters = append(voters, Voter{ArrivalTime: clock, VotingDuration: duration})
	}
	return voters
}

// assignBooths walks the voters in arrival order and gives each the
// earliest booth that frees up. A voter who finds a booth open starts
// immediately; otherwise they wait for the earliest departure.
func (p Precinct) assignBooths(voters []Voter) error {
	pool, err := NewBoothPool(p.NumBooths)
	if err != nil {
		return err
	}
	for i := range voters {
		v := &voters[i]
		if !pool.Full() {
			v.assign(v.ArrivalTime)
		} else {
			v.assign(math.Max(v.ArrivalTime, pool.PopEarliest()))
		}
		pool.Add(v.EndTime)
	}
	return nil
}
