// Package report renders simulation results: end-of-day precinct
// blocks, per-voter tables, estimate summaries, and CSV exports.
package report

import (
	"fmt"
	"io"

	"github.com/precinct-sim/precinct-sim/sim"
	"github.com/precinct-sim/precinct-sim/sim/experiment"
)

// WriteDaySummary prints the end-of-day block for one precinct.
func WriteDaySummary(w io.Writer, s sim.DaySummary) {
	if s.VotersVoted == 0 {
		fmt.Fprintf(w, "Precinct '%s': No voters voted.\n\n", s.Precinct)
		return
	}
	plural := "s"
	if s.VotersVoted == 1 {
		plural = ""
	}
	fmt.Fprintf(w, "PRECINCT '%s'\n", s.Precinct)
	fmt.Fprintf(w, "- %d voter%s voted.\n", s.VotersVoted, plural)
	fmt.Fprintf(w, "- Polls closed at %.1f and last voter departed at %.2f.\n", s.ClosedAt, s.LastDeparture)
	fmt.Fprintf(w, "- Avg wait time: %.2f\n", s.AvgWait)
	fmt.Fprintln(w)
}

// WriteVoterTable prints one row per voter, in arrival order.
func WriteVoterTable(w io.Writer, voters []sim.Voter) {
	fmt.Fprintf(w, "%-10s %-10s %-10s %-10s %-10s\n", "Arrival", "Duration", "Start", "Departure", "Wait")
	for _, v := range voters {
		fmt.Fprintf(w, "%-10.2f %-10.2f %-10.2f %-10.2f %-10.2f\n",
			v.ArrivalTime, v.VotingDuration, v.StartTime, v.DepartureTime(), v.Wait())
	}
}

// WriteTrialStats prints the estimate block produced by repeated trials.
func WriteTrialStats(w io.Writer, precinct string, straightPct float64, s experiment.TrialStats) {
	fmt.Fprintf(w, "Estimated wait for precinct '%s' (%.0f%% straight ticket):\n", precinct, straightPct*100)
	fmt.Fprintf(w, "  Trials:      %d\n", s.Trials)
	fmt.Fprintf(w, "  Median wait: %.2f minutes\n", s.Median)
	fmt.Fprintf(w, "  Mean wait:   %.2f minutes (stddev %.2f)\n", s.Mean, s.StdDev)
	fmt.Fprintf(w, "  Range:       %.2f to %.2f minutes\n", s.Min, s.Max)
}

// WriteThreshold prints the sweep and verdict of a split-ticket
// threshold search.
func WriteThreshold(w io.Writer, precinct string, targetWait float64, th experiment.Threshold) {
	fmt.Fprintf(w, "Sweep of electorate mixes (target wait %.2f minutes):\n", targetWait)
	for _, pt := range th.Sweep {
		marker := ""
		if pt.Exceeds {
			marker = "  <- exceeds target"
		}
		fmt.Fprintf(w, "  straight %.1f / split %.1f: median avg wait %.2f%s\n",
			pt.StraightFraction, pt.SplitFraction, pt.MedianWait, marker)
	}
	fmt.Fprintln(w)
	if th.Feasible {
		fmt.Fprintf(w, "Precinct '%s' exceeds an average waiting time of %.2f minutes with %.0f percent split-ticket voters.\n",
			precinct, targetWait, th.SplitFraction*100)
	} else {
		fmt.Fprintf(w, "Precinct '%s' never exceeds an average waiting time of %.2f minutes, even with all split-ticket voters.\n",
			precinct, targetWait)
	}
}
