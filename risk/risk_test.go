package risk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DiZ-02/millenium-falcon-challenge/risk"
)

func TestBuildTableAndLookup(t *testing.T) {
	require := require.New(t)

	table := risk.BuildTable([]risk.Sighting{
		{Planet: "Hoth", Day: 2},
		{Planet: "Hoth", Day: 2}, // duplicate, collapses
		{Planet: "Endor", Day: 5},
	})

	require.True(table.IsRisky("Hoth", 2))
	require.False(table.IsRisky("Hoth", 3))
	require.False(table.IsRisky("Dagobah", 0), "unknown planet is inert")
	require.Equal(2, table.Count())
}

func TestNilAndEmptyTable(t *testing.T) {
	require := require.New(t)

	var nilTable *risk.Table
	require.False(nilTable.IsRisky("Hoth", 0))

	empty := risk.NewTable()
	require.False(empty.IsRisky("Hoth", 0))
	require.Equal(0, empty.Count())
}
