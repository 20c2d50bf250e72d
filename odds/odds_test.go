package odds_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DiZ-02/millenium-falcon-challenge/odds"
	"github.com/DiZ-02/millenium-falcon-challenge/pathstats"
)

func TestFromRisk(t *testing.T) {
	require.InDelta(t, 1.0, odds.FromRisk(0), 1e-9)
	require.InDelta(t, 0.9, odds.FromRisk(1), 1e-9)
	require.InDelta(t, 0.81, odds.FromRisk(2), 1e-9)
}

func TestFromStatsUnreachableIsZero(t *testing.T) {
	require.Equal(t, 0.0, odds.FromStats(pathstats.Top()))
}

func TestFromStatsReachable(t *testing.T) {
	s := pathstats.Stats{Risk: 1, Elapsed: 5, RemainingAutonomy: 2}
	require.InDelta(t, 0.9, odds.FromStats(s), 1e-9)
}
