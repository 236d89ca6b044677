package placement

import (
	"testing"

	"nogoagent/board"

	"github.com/stretchr/testify/require"
)

func TestPlacementEqualityByBothFields(t *testing.T) {
	a := Placement{Cell: board.CellAt(1, 2), Color: board.Black}
	b := Placement{Cell: board.CellAt(1, 2), Color: board.Black}
	c := Placement{Cell: board.CellAt(1, 2), Color: board.White}

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}

func TestPlacementAsMapKey(t *testing.T) {
	index := map[Placement]int{}
	p := Placement{Cell: board.CellAt(3, 3), Color: board.White}
	index[p] = 42

	require.Equal(t, 42, index[Placement{Cell: board.CellAt(3, 3), Color: board.White}])
}

func TestSentinelIsSentinel(t *testing.T) {
	require.True(t, None.IsSentinel())
	require.True(t, Resign.IsSentinel())
	require.False(t, (Placement{Cell: 0, Color: board.Black}).IsSentinel())
}

func TestLessOrdersByCellThenColor(t *testing.T) {
	a := Placement{Cell: 5, Color: board.Black}
	b := Placement{Cell: 6, Color: board.Black}
	require.True(t, Less(a, b))
	require.False(t, Less(b, a))

	c := Placement{Cell: 5, Color: board.White}
	require.True(t, Less(a, c))
}
