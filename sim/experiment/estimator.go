// Package experiment runs repeated election-day simulations to estimate
// precinct wait times and search over electorate mixes.
//
// Estimates are deterministic: trial k of an experiment always runs with
// seed BaseSeed+k, whether trials execute sequentially or in parallel.
package experiment

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/precinct-sim/precinct-sim/sim"
)

// ErrEmptyTrial reports a trial in which no voter arrived before the
// polls closed, leaving the mean wait undefined.
var ErrEmptyTrial = errors.New("no voters voted in trial")

// Estimator estimates a precinct's expected wait time by simulating the
// same day under consecutive seeds and aggregating per-trial mean waits.
type Estimator struct {
	Trials   int
	BaseSeed int64
	// Parallel caps how many trials run concurrently. Values below 2
	// run trials sequentially.
	Parallel int
	// Progress, when set, is called once per finished trial.
	Progress func()
}

// TrialMeans simulates Trials election days at the precinct, with the
// straight-ticket share forced to straightPct, and returns the mean
// wait of each trial indexed by trial number.
//
// Trial k uses seed BaseSeed+k. When trials run in parallel the result
// is identical to a sequential run; if several trials fail, the error
// from the lowest-numbered one is returned.
func (e Estimator) TrialMeans(p sim.Precinct, straightPct float64) ([]float64, error) {
	if e.Trials < 1 {
		return nil, fmt.Errorf("trials must be at least 1, got %d", e.Trials)
	}

	means := make([]float64, e.Trials)
	errs := make([]error, e.Trials)

	if e.Parallel > 1 {
		var g errgroup.Group
		g.SetLimit(e.Parallel)
		for i := 0; i < e.Trials; i++ {
			g.Go(func() error {
				errs[i] = e.runTrial(p, straightPct, i, &means[i])
				if e.Progress != nil {
					e.Progress()
				}
				return errs[i]
			})
		}
		_ = g.Wait()
	} else {
		for i := 0; i < e.Trials; i++ {
			errs[i] = e.runTrial(p, straightPct, i, &means[i])
			if e.Progress != nil {
				e.Progress()
			}
		}
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return means, nil
}

// MedianWait runs TrialMeans and reduces it to the median trial mean,
// the estimator's headline figure for a precinct.
func (e Estimator) MedianWait(p sim.Precinct, straightPct float64) (float64, error) {
	means, err := e.TrialMeans(p, straightPct)
	if err != nil {
		return 0, err
	}
	return Median(means), nil
}

func (e Estimator) runTrial(p sim.Precinct, straightPct float64, trial int, out *float64) error {
	seed := e.BaseSeed + int64(trial)
	voters, err := p.Simulate(straightPct, p.StraightTicketDuration, seed)
	if err != nil {
		return fmt.Errorf("trial %d (seed %d): %w", trial, seed, err)
	}
	if len(voters) == 0 {
		return fmt.Errorf("precinct %q trial %d (seed %d): %w", p.Name, trial, seed, ErrEmptyTrial)
	}

	waits := make([]float64, len(voters))
	for i, v := range voters {
		waits[i] = v.Wait()
	}
	*out = stat.Mean(waits, nil)

	logrus.Debugf("precinct %q trial %d (seed %d): %d voters, mean wait %.2f",
		p.Name, trial, seed, len(voters), *out)
	return nil
}
