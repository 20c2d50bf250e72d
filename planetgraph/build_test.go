package planetgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/DiZ-02/millenium-falcon-challenge/planetgraph"
)

type BuildSuite struct {
	suite.Suite
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

func (s *BuildSuite) TestBuildFromRoutes() {
	require := require.New(s.T())

	g, err := planetgraph.BuildFromRoutes([]planetgraph.Route{
		{Origin: "Tatooine", Destination: "Naboo", TravelTime: 3},
		{Origin: "Naboo", Destination: "Coruscant", TravelTime: 2},
	})
	require.NoError(err)
	require.Equal(3, g.NodeCount())

	w, ok := g.Weight("Tatooine", "Naboo")
	require.True(ok)
	require.EqualValues(3, w)

	// Undirected: mirror edge present.
	w, ok = g.Weight("Naboo", "Tatooine")
	require.True(ok)
	require.EqualValues(3, w)

	// Wait self-loop stamped on every discovered node.
	for _, n := range []string{"Tatooine", "Naboo", "Coruscant"} {
		w, ok := g.Weight(n, n)
		require.True(ok, "missing wait self-loop for %s", n)
		require.EqualValues(planetgraph.WaitWeight, w)
	}
}

func (s *BuildSuite) TestDuplicateRouteOverwrites() {
	require := require.New(s.T())

	g, err := planetgraph.BuildFromRoutes([]planetgraph.Route{
		{Origin: "X", Destination: "Y", TravelTime: 2},
		{Origin: "X", Destination: "Y", TravelTime: 5},
	})
	require.NoError(err)

	w, ok := g.Weight("X", "Y")
	require.True(ok)
	require.EqualValues(5, w, "last record should win")
	require.Equal(1, g.DuplicateCount())
}

func (s *BuildSuite) TestWaitIdempotence() {
	require := require.New(s.T())

	withoutExplicitWait, err := planetgraph.BuildFromRoutes([]planetgraph.Route{
		{Origin: "X", Destination: "Y", TravelTime: 2},
	})
	require.NoError(err)

	withExplicitWait, err := planetgraph.BuildFromRoutes([]planetgraph.Route{
		{Origin: "X", Destination: "Y", TravelTime: 2},
		{Origin: "X", Destination: "X", TravelTime: 1},
	})
	require.NoError(err)

	wa, _ := withoutExplicitWait.Weight("X", "X")
	wb, _ := withExplicitWait.Weight("X", "X")
	require.Equal(wa, wb)
}

func (s *BuildSuite) TestInvalidRecords() {
	require := require.New(s.T())

	_, err := planetgraph.BuildFromRoutes([]planetgraph.Route{{Origin: "", Destination: "Y", TravelTime: 1}})
	require.True(errors.Is(err, planetgraph.ErrEmptyNodeID))

	_, err = planetgraph.BuildFromRoutes([]planetgraph.Route{{Origin: "X", Destination: "Y", TravelTime: 0}})
	require.True(errors.Is(err, planetgraph.ErrNonPositiveWeight))
}

func (s *BuildSuite) TestTooManyNodes() {
	require := require.New(s.T())

	routes := make([]planetgraph.Route, 0, planetgraph.MaxNodes)
	for i := 0; i < planetgraph.MaxNodes; i++ {
		routes = append(routes, planetgraph.Route{Origin: "hub", Destination: idFor(i), TravelTime: 1})
	}
	_, err := planetgraph.BuildFromRoutes(routes)
	require.True(errors.Is(err, planetgraph.ErrTooManyNodes))
}

func idFor(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	return string(letters[i%len(letters)]) + string(rune('0'+i/len(letters)))
}
