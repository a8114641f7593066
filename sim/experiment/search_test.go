package experiment

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/precinct-sim/precinct-sim/sim"
)

// fakeEstimator returns canned median waits keyed by straight-ticket
// share and records every share it is asked about.
type fakeEstimator struct {
	waits map[float64]float64
	err   error
	calls []float64
}

func (f *fakeEstimator) MedianWait(_ sim.Precinct, straightPct float64) (float64, error) {
	f.calls = append(f.calls, straightPct)
	if f.err != nil {
		return 0, f.err
	}
	return f.waits[straightPct], nil
}

func TestFindSplitThresholdStopsAtFirstExceed(t *testing.T) {
	est := &fakeEstimator{waits: map[float64]float64{
		1.0: 1,
		0.9: 2,
		0.8: 5, // equals the target: strictly-greater must not trigger
		0.7: 5.1,
	}}

	th, err := FindSplitThreshold(est, busyPrecinct(), 5)
	require.NoError(t, err)

	assert.True(t, th.Feasible)
	assert.Equal(t, 0.3, th.SplitFraction)
	assert.Equal(t, 5.1, th.MedianWait)

	// The sweep stopped at the first exceeding point.
	assert.Equal(t, []float64{1.0, 0.9, 0.8, 0.7}, est.calls)
	require.Len(t, th.Sweep, 4)
	assert.False(t, th.Sweep[2].Exceeds)
	assert.True(t, th.Sweep[3].Exceeds)
	assert.Equal(t, 0.7, th.Sweep[3].StraightFraction)
}

func TestFindSplitThresholdInfeasible(t *testing.T) {
	waits := make(map[float64]float64)
	for split := 0; split <= 10; split++ {
		waits[float64(10-split)/10] = 2
	}
	est := &fakeEstimator{waits: waits}

	th, err := FindSplitThreshold(est, busyPrecinct(), 100)
	require.NoError(t, err)

	assert.False(t, th.Feasible)
	assert.Equal(t, 1.0, th.SplitFraction)
	assert.Equal(t, 2.0, th.MedianWait)
	assert.Len(t, est.calls, 11)
	require.Len(t, th.Sweep, 11)
	assert.Equal(t, 0.0, th.Sweep[0].SplitFraction)
	assert.Equal(t, 1.0, th.Sweep[10].SplitFraction)
}

func TestFindSplitThresholdPropagatesEstimatorError(t *testing.T) {
	boom := errors.New("boom")
	est := &fakeEstimator{err: boom}

	_, err := FindSplitThreshold(est, busyPrecinct(), 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), "straight-ticket share 1.0")
}

func TestFindSplitThresholdRejectsNonFiniteTarget(t *testing.T) {
	est := &fakeEstimator{}
	for _, target := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := FindSplitThreshold(est, busyPrecinct(), target)
		require.Error(t, err)
		if !strings.Contains(err.Error(), "target wait must be a finite number") {
			t.Errorf("error %q does not mention the non-finite target", err)
		}
	}
	assert.Empty(t, est.calls)
}

// TestFindSplitThresholdRealEstimatorBookends drives the search with a
// real estimator at extreme targets where the outcome is unambiguous.
func TestFindSplitThresholdRealEstimatorBookends(t *testing.T) {
	p := busyPrecinct()
	est := Estimator{Trials: 5, BaseSeed: 42}

	// A near-zero target is exceeded immediately by an undersized precinct.
	th, err := FindSplitThreshold(est, p, 0.0001)
	require.NoError(t, err)
	assert.True(t, th.Feasible)
	assert.Equal(t, 0.0, th.SplitFraction)
	assert.Len(t, th.Sweep, 1)

	// An absurd target is never exceeded.
	th, err = FindSplitThreshold(est, p, 1e9)
	require.NoError(t, err)
	assert.False(t, th.Feasible)
	assert.Equal(t, 1.0, th.SplitFraction)
	assert.Len(t, th.Sweep, 11)
}
