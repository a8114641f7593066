package sim

import (
	"gonum.org/v1/gonum/stat"
)

// DaySummary aggregates one simulated election day at a precinct.
type DaySummary struct {
	Precinct      string
	VotersVoted   int
	AvgWait       float64 // mean minutes spent in line
	MaxWait       float64
	ClosedAt      float64 // minute the polls stopped admitting voters
	LastDeparture float64 // minute the last voter left a booth
}

// SummarizeDay computes the day's statistics from the simulated voters.
// An empty day keeps all wait and departure figures at zero.
func SummarizeDay(p Precinct, voters []Voter) DaySummary {
	s := DaySummary{
		Precinct:    p.Name,
		VotersVoted: len(voters),
		ClosedAt:    p.MinutesOpen(),
	}
	if len(voters) == 0 {
		return s
	}

	waits := make([]float64, len(voters))
	for i, v := range voters {
		waits[i] = v.Wait()
		if waits[i] > s.MaxWait {
			s.MaxWait = waits[i]
		}
		if v.DepartureTime() > s.LastDeparture {
			s.LastDeparture = v.DepartureTime()
		}
	}
	s.AvgWait = stat.Mean(waits, nil)
	return s
}
