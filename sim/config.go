package sim

import (
	"fmt"
	"math"
)

// Precinct configures a single polling place for one election day.
// Loaded from a YAML election file via LoadElection; immutable once
// validated.
type Precinct struct {
	Name                   string  `yaml:"name"`
	HoursOpen              int     `yaml:"hours_open"`
	NumVoters              int     `yaml:"num_voters"` // voter budget for the day; 0 simulates an empty day
	NumBooths              int     `yaml:"num_booths"`
	ArrivalRate            float64 `yaml:"arrival_rate"`             // voters per minute (exponential inter-arrival)
	VotingDurationRate     float64 `yaml:"voting_duration_rate"`     // rate for split-ticket voting durations
	PercentStraightTicket  float64 `yaml:"percent_straight_ticket"`  // fraction of straight-ticket voters, in [0, 1]
	StraightTicketDuration float64 `yaml:"straight_ticket_duration"` // minutes a straight-ticket ballot takes
}

// MinutesOpen returns how long the polls accept arrivals, in minutes.
func (p Precinct) MinutesOpen() float64 {
	return float64(p.HoursOpen) * 60
}

// Validate checks that all fields describe a simulable precinct.
func (p *Precinct) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if p.HoursOpen <= 0 {
		return fmt.Errorf("hours_open must be positive, got %d", p.HoursOpen)
	}
	if p.NumVoters < 0 {
		return fmt.Errorf("num_voters must be non-negative, got %d", p.NumVoters)
	}
	if p.NumBooths <= 0 {
		return fmt.Errorf("num_booths must be positive, got %d", p.NumBooths)
	}
	if err := validateFinitePositive("arrival_rate", p.ArrivalRate); err != nil {
		return err
	}
	if err := validateFinitePositive("voting_duration_rate", p.VotingDurationRate); err != nil {
		return err
	}
	if err := validateFraction("percent_straight_ticket", p.PercentStraightTicket); err != nil {
		return err
	}
	return validateFinitePositive("straight_ticket_duration", p.StraightTicketDuration)
}

func validateFinitePositive(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val <= 0 {
		return fmt.Errorf("%s must be positive, got %f", name, val)
	}
	return nil
}

func validateFraction(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val < 0 || val > 1 {
		return fmt.Errorf("%s must be in [0, 1], got %f", name, val)
	}
	return nil
}
