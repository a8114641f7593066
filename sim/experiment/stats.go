package experiment

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Median returns the median of values, taking the upper of the two
// middle elements when the count is even. values must be non-empty and
// is left unmodified.
func Median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted[len(sorted)/2]
}

// TrialStats summarizes the per-trial mean waits of one experiment.
type TrialStats struct {
	Trials int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
}

// NewTrialStats computes summary statistics over per-trial mean waits.
// means must be non-empty. StdDev is the sample standard deviation and
// is zero for a single trial.
func NewTrialStats(means []float64) TrialStats {
	sorted := make([]float64, len(means))
	copy(sorted, means)
	sort.Float64s(sorted)

	s := TrialStats{
		Trials: len(means),
		Mean:   stat.Mean(means, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: sorted[len(sorted)/2],
	}
	if len(means) > 1 {
		s.StdDev = stat.StdDev(means, nil)
	}
	return s
}
