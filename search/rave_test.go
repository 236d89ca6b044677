package search

import (
	"testing"

	"nogoagent/board"
	"nogoagent/placement"

	"github.com/stretchr/testify/require"
)

func TestRAVEIndexLookupMissReturnsNil(t *testing.T) {
	r := NewRAVEIndex()
	require.Nil(t, r.Lookup(placement.Placement{Cell: board.CellAt(0, 0), Color: board.Black}))
}

func TestRAVEIndexRegistersEveryHandleUnderItsPlacement(t *testing.T) {
	r := NewRAVEIndex()
	p := placement.Placement{Cell: board.CellAt(2, 3), Color: board.White}

	r.Register(p, NodeHandle(1))
	r.Register(p, NodeHandle(5))

	require.Equal(t, []NodeHandle{1, 5}, r.Lookup(p))
}

func TestRAVEIndexKeepsDistinctPlacementsSeparate(t *testing.T) {
	r := NewRAVEIndex()
	black := placement.Placement{Cell: board.CellAt(0, 0), Color: board.Black}
	white := placement.Placement{Cell: board.CellAt(0, 0), Color: board.White}

	r.Register(black, NodeHandle(1))
	r.Register(white, NodeHandle(2))

	require.Equal(t, []NodeHandle{1}, r.Lookup(black))
	require.Equal(t, []NodeHandle{2}, r.Lookup(white))
}
