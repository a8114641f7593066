package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVoterAssignSetsStartAndEnd(t *testing.T) {
	v := Voter{ArrivalTime: 10, VotingDuration: 4}
	v.assign(12)

	if v.StartTime != 12 {
		t.Errorf("expected start time 12, got %f", v.StartTime)
	}
	if v.EndTime != 16 {
		t.Errorf("expected end time 16, got %f", v.EndTime)
	}
}

func TestVoterWait(t *testing.T) {
	v := Voter{ArrivalTime: 10, VotingDuration: 4}

	// A voter who starts on arrival waits zero minutes.
	v.assign(v.ArrivalTime)
	assert.Equal(t, 0.0, v.Wait())

	// A voter who starts later waits exactly the difference.
	v.assign(17.5)
	assert.Equal(t, 7.5, v.Wait())
}

func TestVoterDepartureTime(t *testing.T) {
	v := Voter{ArrivalTime: 3, VotingDuration: 2.5}
	v.assign(6)

	assert.Equal(t, v.EndTime, v.DepartureTime())
	assert.Equal(t, 8.5, v.DepartureTime())
}

func TestVoterString(t *testing.T) {
	v := Voter{ArrivalTime: 1, VotingDuration: 2}
	v.assign(3)

	assert.Equal(t, "Voter: (Arrival: 1.00, Start: 3.00, Departure: 5.00)", v.String())
}
