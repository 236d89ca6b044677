package search

import (
	"testing"

	"nogoagent/board"
	"nogoagent/placement"

	"github.com/stretchr/testify/require"
)

func TestArenaNewNodeReturnsIncreasingHandles(t *testing.T) {
	a := NewArena()
	h0 := a.NewNode(placement.None, 0, 0)
	h1 := a.NewNode(placement.Placement{Cell: board.CellAt(0, 0), Color: board.Black}, RAVEPriorVisits, RAVEPriorValue)

	require.Equal(t, NodeHandle(0), h0)
	require.Equal(t, NodeHandle(1), h1)
	require.Equal(t, 2, a.Len())
}

func TestArenaNodeSeedsRaveStatistics(t *testing.T) {
	a := NewArena()
	h := a.NewNode(placement.None, RAVEPriorVisits, RAVEPriorValue)

	n := a.Node(h)
	require.Equal(t, RAVEPriorVisits, n.RaveVisits)
	require.Equal(t, RAVEPriorValue, n.RaveValueSum)
	require.False(t, n.Expanded)
	require.Empty(t, n.Children)
}

func TestArenaNodeMutationIsVisibleThroughHandle(t *testing.T) {
	a := NewArena()
	h := a.NewNode(placement.None, 0, 0)

	a.Node(h).Visits = 3
	require.Equal(t, 3, a.Node(h).Visits)
}
