package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/lucsky/cuid"

	"github.com/precinct-sim/precinct-sim/sim"
)

// PrecinctDay pairs a precinct name with its simulated voters for export.
type PrecinctDay struct {
	Precinct string
	Voters   []sim.Voter
}

var votersCSVHeader = []string{
	"voter_id", "precinct", "arrival_minute", "start_minute",
	"departure_minute", "voting_duration", "wait",
}

// WriteVotersCSV exports every simulated voter as one CSV row. Each row
// gets a fresh collision-resistant id, so exports from separate runs
// can be concatenated without clashes.
func WriteVotersCSV(w io.Writer, days []PrecinctDay) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(votersCSVHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, day := range days {
		for _, v := range day.Voters {
			record := []string{
				cuid.New(),
				day.Precinct,
				formatMinutes(v.ArrivalTime),
				formatMinutes(v.StartTime),
				formatMinutes(v.DepartureTime()),
				formatMinutes(v.VotingDuration),
				formatMinutes(v.Wait()),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("writing voter row for precinct %q: %w", day.Precinct, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatMinutes(m float64) string {
	return strconv.FormatFloat(m, 'f', 4, 64)
}
