package s64shift //nolint:testpackage // it's OK to be just s64shift

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSweeperValidation(t *testing.T) {
	rep := &RecordReporter{}

	_, err := NewSweeper(SweepConfig{Values: 0, Max: 100}, rep)
	require.ErrorIs(t, err, ErrNoValues)

	_, err = NewSweeper(SweepConfig{Values: 10, Max: -1}, rep)
	require.ErrorIs(t, err, ErrNegativeMax)

	sw, err := NewSweeper(SweepConfig{Values: 10, Max: 100}, rep)
	require.NoError(t, err)
	require.Positive(t, sw.cfg.Workers, "zero workers must resolve to a real count")
}

func TestBoundaryProbes(t *testing.T) {
	rep := &RecordReporter{}
	st := Boundary(NewChecker(rep))

	require.Equal(t, Stats{Checks: 4}, st)
	require.Empty(t, rep.Mismatches())
}

// TestSweepSmallRange walks the narrow range where every sampled value meets
// high shift counts; no mismatch may surface.
func TestSweepSmallRange(t *testing.T) {
	rep := &RecordReporter{}
	sw, err := NewSweeper(SweepConfig{Values: 500, Max: SmallRangeMax, Workers: 2, Seed: 1}, rep)
	require.NoError(t, err)

	st, err := sw.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(500), st.Values)
	require.Zero(t, st.Mismatches)
	require.Empty(t, rep.Mismatches())
}

func TestSweepFullRange(t *testing.T) {
	rep := &RecordReporter{}
	sw, err := NewSweeper(SweepConfig{Values: 200, Max: math.MaxInt64, Workers: 4, Seed: 1}, rep)
	require.NoError(t, err)

	st, err := sw.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(200), st.Values)
	require.Zero(t, st.Mismatches)
}

// TestSweepReproducible: an explicit seed and fixed worker count must tally
// identically across runs.
func TestSweepReproducible(t *testing.T) {
	run := func() Stats {
		rep := &RecordReporter{}
		sw, err := NewSweeper(SweepConfig{Values: 300, Max: SmallRangeMax, Workers: 3, Seed: 42}, rep)
		require.NoError(t, err)
		st, err := sw.Run(context.Background())
		require.NoError(t, err)
		return st
	}

	require.Equal(t, run(), run())
}

func TestSweepCancel(t *testing.T) {
	rep := &RecordReporter{}
	sw, err := NewSweeper(SweepConfig{Values: DefaultValues, Max: math.MaxInt64, Workers: 2, Seed: 1}, rep)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = sw.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestStatsAdd(t *testing.T) {
	st := Stats{Values: 1, Checks: 2, Mismatches: 3}
	st.Add(Stats{Values: 10, Checks: 20, Mismatches: 30})
	require.Equal(t, Stats{Values: 11, Checks: 22, Mismatches: 33}, st)
}
