package job_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DiZ-02/millenium-falcon-challenge/job"
	"github.com/DiZ-02/millenium-falcon-challenge/planetgraph"
	"github.com/DiZ-02/millenium-falcon-challenge/risk"
)

func TestSolveEndToEndDirectSafe(t *testing.T) {
	require := require.New(t)

	g, err := planetgraph.BuildFromRoutes([]planetgraph.Route{{Origin: "X", Destination: "Y", TravelTime: 2}})
	require.NoError(err)

	result, err := job.Solve(job.Params{Autonomy: 6, Countdown: 5, Origin: "X", Destination: "Y"}, g, risk.NewTable())
	require.NoError(err)
	require.InDelta(1.0, result, 1e-9)
}

func TestSolveEndToEndDirectRisky(t *testing.T) {
	require := require.New(t)

	g, err := planetgraph.BuildFromRoutes([]planetgraph.Route{{Origin: "X", Destination: "Y", TravelTime: 2}})
	require.NoError(err)

	rt := risk.BuildTable([]risk.Sighting{{Planet: "Y", Day: 2}})
	result, err := job.Solve(job.Params{Autonomy: 6, Countdown: 5, Origin: "X", Destination: "Y"}, g, rt)
	require.NoError(err)
	require.InDelta(0.9, result, 1e-9)
}

func TestSolveRejectsBadAutonomy(t *testing.T) {
	require := require.New(t)

	g, err := planetgraph.BuildFromRoutes([]planetgraph.Route{{Origin: "X", Destination: "Y", TravelTime: 2}})
	require.NoError(err)

	_, err = job.Solve(job.Params{Autonomy: 0, Countdown: 5, Origin: "X", Destination: "Y"}, g, risk.NewTable())
	require.ErrorIs(err, job.ErrConfigurationRejected)

	_, err = job.Solve(job.Params{Autonomy: job.MaxAutonomy, Countdown: 5, Origin: "X", Destination: "Y"}, g, risk.NewTable())
	require.ErrorIs(err, job.ErrConfigurationRejected)
}

func TestSolveRejectsMissingEndpoint(t *testing.T) {
	require := require.New(t)

	g, err := planetgraph.BuildFromRoutes([]planetgraph.Route{{Origin: "X", Destination: "Y", TravelTime: 2}})
	require.NoError(err)

	_, err = job.Solve(job.Params{Autonomy: 6, Countdown: 5, Origin: "X", Destination: "Nowhere"}, g, risk.NewTable())
	require.ErrorIs(err, job.ErrGraphMissingEndpoint)
}

func TestSolveInfeasibleReturnsZeroNoError(t *testing.T) {
	require := require.New(t)

	g, err := planetgraph.BuildFromRoutes([]planetgraph.Route{
		{Origin: "X", Destination: "Y", TravelTime: 3},
		{Origin: "Y", Destination: "Z", TravelTime: 3},
	})
	require.NoError(err)

	result, err := job.Solve(job.Params{Autonomy: 3, Countdown: 6, Origin: "X", Destination: "Z"}, g, risk.NewTable())
	require.NoError(err)
	require.Equal(0.0, result)
}
