package planetgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DiZ-02/millenium-falcon-challenge/planetgraph"
)

func TestSameComponent(t *testing.T) {
	require := require.New(t)

	g, err := planetgraph.BuildFromRoutes([]planetgraph.Route{
		{Origin: "A", Destination: "B", TravelTime: 1},
		{Origin: "B", Destination: "C", TravelTime: 1},
		{Origin: "X", Destination: "Y", TravelTime: 1},
	})
	require.NoError(err)

	ok, err := g.SameComponent("A", "C")
	require.NoError(err)
	require.True(ok)

	ok, err = g.SameComponent("A", "X")
	require.NoError(err)
	require.False(ok)

	_, err = g.SameComponent("A", "Nonexistent")
	require.ErrorIs(err, planetgraph.ErrNodeNotFound)
}

func TestComponentSizes(t *testing.T) {
	require := require.New(t)

	g, err := planetgraph.BuildFromRoutes([]planetgraph.Route{
		{Origin: "A", Destination: "B", TravelTime: 1},
		{Origin: "X", Destination: "Y", TravelTime: 1},
		{Origin: "Y", Destination: "Z", TravelTime: 1},
	})
	require.NoError(err)

	sizes := g.ComponentSizes()
	require.ElementsMatch([]int{2, 3}, sizes)
}
