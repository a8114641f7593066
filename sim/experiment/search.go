package experiment

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/precinct-sim/precinct-sim/sim"
)

// WaitEstimator estimates the median wait time of a precinct for a
// given straight-ticket share.
type WaitEstimator interface {
	MedianWait(p sim.Precinct, straightPct float64) (float64, error)
}

// SweepPoint is one evaluated electorate mix in a threshold search.
type SweepPoint struct {
	StraightFraction float64
	SplitFraction    float64
	MedianWait       float64
	Exceeds          bool
}

// Threshold is the outcome of FindSplitThreshold. When Feasible, the
// target wait is first exceeded at SplitFraction with the recorded
// MedianWait. When not, even an all-split-ticket electorate stays at or
// below the target; SplitFraction is 1 and MedianWait is the final
// sweep point's. Sweep holds every evaluated point in order.
type Threshold struct {
	SplitFraction float64
	MedianWait    float64
	Feasible      bool
	Sweep         []SweepPoint
}

// FindSplitThreshold sweeps the electorate mix from all straight-ticket
// to all split-ticket in tenths and returns the smallest split-ticket
// fraction whose median wait exceeds targetWait. The sweep stops at the
// first exceeding point.
//
// Each point reuses the estimator unchanged, so a deterministic
// estimator evaluates every mix over the same seeds.
func FindSplitThreshold(est WaitEstimator, p sim.Precinct, targetWait float64) (Threshold, error) {
	if math.IsNaN(targetWait) || math.IsInf(targetWait, 0) {
		return Threshold{}, fmt.Errorf("target wait must be a finite number, got %f", targetWait)
	}

	sweep := make([]SweepPoint, 0, 11)
	for split := 0; split <= 10; split++ {
		straight := float64(10-split) / 10
		wait, err := est.MedianWait(p, straight)
		if err != nil {
			return Threshold{}, fmt.Errorf("straight-ticket share %.1f: %w", straight, err)
		}

		point := SweepPoint{
			StraightFraction: straight,
			SplitFraction:    float64(split) / 10,
			MedianWait:       wait,
			Exceeds:          wait > targetWait,
		}
		sweep = append(sweep, point)
		logrus.Infof("precinct %q: straight %.1f / split %.1f: median wait %.2f (target %.2f)",
			p.Name, point.StraightFraction, point.SplitFraction, wait, targetWait)

		if point.Exceeds {
			return Threshold{
				SplitFraction: point.SplitFraction,
				MedianWait:    wait,
				Feasible:      true,
				Sweep:         sweep,
			}, nil
		}
	}

	last := sweep[len(sweep)-1]
	return Threshold{
		SplitFraction: 1,
		MedianWait:    last.MedianWait,
		Feasible:      false,
		Sweep:         sweep,
	}, nil
}
