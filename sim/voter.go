// Defines the Voter record that models an individual voter in the simulation.
// Tracks arrival, service duration, and the booth assignment timestamps.

package sim

import (
	"fmt"
)

// Voter models a single voter's passage through the precinct.
// ArrivalTime and VotingDuration are fixed when the voter is generated;
// StartTime and EndTime are stamped exactly once during booth assignment.
// All times are minutes since the polls opened.
type Voter struct {
	ArrivalTime    float64 // Minute the voter joins the line
	VotingDuration float64 // Minutes the voter occupies a booth
	StartTime      float64 // Minute the voter enters a booth (>= ArrivalTime)
	EndTime        float64 // StartTime + VotingDuration
}

// assign stamps the booth assignment for this voter.
func (v *Voter) assign(start float64) {
	v.StartTime = start
	v.EndTime = start + v.VotingDuration
}

// Wait returns the minutes spent in line before entering a booth.
func (v Voter) Wait() float64 {
	return v.StartTime - v.ArrivalTime
}

// DepartureTime returns the minute the voter leaves the precinct.
// It is an alias for EndTime; reporting code reads departures, the
// assignment code writes end times.
func (v Voter) DepartureTime() float64 {
	return v.EndTime
}

// String returns a human-readable representation of a Voter.
func (v Voter) String() string {
	return fmt.Sprintf("Voter: (Arrival: %.2f, Start: %.2f, Departure: %.2f)", v.ArrivalTime, v.StartTime, v.EndTime)
}
