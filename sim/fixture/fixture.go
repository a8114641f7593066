// Package fixture generates synthetic election files for demos and
// capacity experiments.
package fixture

import (
	"fmt"
	"math/rand"

	"github.com/jaswdr/faker"

	"github.com/precinct-sim/precinct-sim/sim"
)

// Factory produces synthetic precincts and elections. Factories built
// with the same seed produce identical output.
type Factory struct {
	fake  faker.Faker
	rng   *rand.Rand
	names map[string]bool
}

func NewFactory(seed int64) *Factory {
	return &Factory{
		fake:  faker.NewWithSeed(rand.NewSource(seed)),
		rng:   rand.New(rand.NewSource(seed)),
		names: make(map[string]bool),
	}
}

// Precinct generates one plausible precinct with a unique name. Field
// ranges cover everything from a sleepy rural site to an undersized
// urban one, so generated elections exercise both idle and congested
// booth pools.
func (f *Factory) Precinct() sim.Precinct {
	return sim.Precinct{
		Name:                   f.uniqueName(),
		HoursOpen:              f.fake.IntBetween(10, 14),
		NumVoters:              f.fake.IntBetween(200, 2000),
		NumBooths:              f.fake.IntBetween(1, 12),
		ArrivalRate:            f.fake.Float64(3, 50, 2000) / 1000,
		VotingDurationRate:     f.fake.Float64(3, 100, 1000) / 1000,
		PercentStraightTicket:  f.fake.Float64(2, 0, 100) / 100,
		StraightTicketDuration: f.fake.Float64(1, 2, 10),
	}
}

// Election generates an election document with n precincts and a fresh
// base seed.
func (f *Factory) Election(n int) sim.Election {
	e := sim.Election{
		Seed:      1 + f.rng.Int63n(1<<31),
		Precincts: make([]sim.Precinct, 0, n),
	}
	for i := 0; i < n; i++ {
		e.Precincts = append(e.Precincts, f.Precinct())
	}
	return e
}

func (f *Factory) uniqueName() string {
	base := fmt.Sprintf("%s Ward %d", f.fake.Address().City(), f.fake.IntBetween(1, 99))
	name := base
	for i := 2; f.names[name]; i++ {
		name = fmt.Sprintf("%s No. %d", base, i)
	}
	f.names[name] = true
	return name
}
