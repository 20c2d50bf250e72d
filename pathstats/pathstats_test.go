package pathstats_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DiZ-02/millenium-falcon-challenge/pathstats"
)

func TestLessRiskDominates(t *testing.T) {
	require := require.New(t)

	lowRisk := pathstats.Stats{Risk: 0, Elapsed: 10, RemainingAutonomy: 0}
	highRisk := pathstats.Stats{Risk: 1, Elapsed: 1, RemainingAutonomy: 99}
	require.True(pathstats.Less(lowRisk, highRisk))
	require.False(pathstats.Less(highRisk, lowRisk))
}

func TestLessElapsedTiebreak(t *testing.T) {
	require := require.New(t)

	faster := pathstats.Stats{Risk: 0, Elapsed: 2, RemainingAutonomy: 0}
	slower := pathstats.Stats{Risk: 0, Elapsed: 5, RemainingAutonomy: 99}
	require.True(pathstats.Less(faster, slower))
}

func TestLessAutonomyTiebreakIsInverted(t *testing.T) {
	require := require.New(t)

	moreFuel := pathstats.Stats{Risk: 0, Elapsed: 4, RemainingAutonomy: 3}
	lessFuel := pathstats.Stats{Risk: 0, Elapsed: 4, RemainingAutonomy: 1}
	require.True(pathstats.Less(moreFuel, lessFuel), "higher remaining autonomy must dominate on a tie")
}

func TestMin(t *testing.T) {
	require := require.New(t)

	a := pathstats.Stats{Risk: 1, Elapsed: 1, RemainingAutonomy: 1}
	b := pathstats.Stats{Risk: 0, Elapsed: 9, RemainingAutonomy: 0}
	require.Equal(b, pathstats.Min(a, b))
	require.Equal(b, pathstats.Min(b, a))
}

func TestTopIsWorstAndUnreachable(t *testing.T) {
	require := require.New(t)

	top := pathstats.Top()
	require.False(top.Reachable())

	finite := pathstats.Stats{Risk: 5, Elapsed: 5, RemainingAutonomy: 0}
	require.True(finite.Reachable())
	require.True(pathstats.Less(finite, top))
}
