package progress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFreshTracker(t *testing.T) {
	tr := New(DefaultTargetMinutes)

	require.Equal(t, 0.0, tr.Percentage())
	require.Equal(t, StatusNotStarted, tr.Status())
	require.Equal(t, 150.0, tr.Target())
}

func TestTrackerReachesTarget(t *testing.T) {
	tr := New(DefaultTargetMinutes)
	tr.Add(150)

	require.Equal(t, 100.0, tr.Percentage())
	require.Equal(t, StatusTargetMet, tr.Status())
}

func TestTrackerSplitAddsMatchSingleAdd(t *testing.T) {
	tr := New(DefaultTargetMinutes)
	tr.Add(75)
	tr.Add(75)

	require.Equal(t, 150.0, tr.Accumulated())
	require.Equal(t, 100.0, tr.Percentage())
	require.Equal(t, StatusTargetMet, tr.Status())
}

func TestTrackerInProgress(t *testing.T) {
	tr := New(DefaultTargetMinutes)
	tr.Add(60)

	require.InDelta(t, 40.0, tr.Percentage(), 1e-9)
	require.Equal(t, StatusInProgress, tr.Status())
}

func TestTrackerCapsPercentageButNotAccumulator(t *testing.T) {
	tr := New(DefaultTargetMinutes)
	tr.Add(120)
	tr.Add(120)

	require.Equal(t, 240.0, tr.Accumulated())
	require.Equal(t, 100.0, tr.Percentage())
	require.Equal(t, StatusTargetMet, tr.Status())
}

func TestTrackerPercentageIsPureRead(t *testing.T) {
	tr := New(DefaultTargetMinutes)
	tr.Add(33)

	first := tr.Percentage()
	for i := 0; i < 5; i++ {
		require.Equal(t, first, tr.Percentage())
	}
	require.Equal(t, 33.0, tr.Accumulated())
}

func TestTrackerNonPositiveTargetFallsBack(t *testing.T) {
	require.Equal(t, DefaultTargetMinutes, New(0).Target())
	require.Equal(t, DefaultTargetMinutes, New(-10).Target())
	require.Equal(t, 90.0, New(90).Target())
}

func TestTrackerNegativeAddIsNotGuarded(t *testing.T) {
	tr := New(DefaultTargetMinutes)
	tr.Add(-15)

	require.Equal(t, -15.0, tr.Accumulated())
	require.Equal(t, StatusNotStarted, tr.Status())
	require.InDelta(t, -10.0, tr.Percentage(), 1e-9)
}

func TestIndependentTrackers(t *testing.T) {
	a := New(DefaultTargetMinutes)
	b := New(DefaultTargetMinutes)
	a.Add(150)

	require.Equal(t, StatusTargetMet, a.Status())
	require.Equal(t, StatusNotStarted, b.Status())
}
