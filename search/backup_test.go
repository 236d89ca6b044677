package search

import (
	"testing"

	"nogoagent/board"
	"nogoagent/placement"

	"github.com/stretchr/testify/require"
)

func TestBackupSkipsTheRoot(t *testing.T) {
	a := NewArena()
	rave := NewRAVEIndex()
	root := a.NewNode(placement.None, 0, 0)
	child := a.NewNode(placement.Placement{Cell: 0, Color: board.Black}, 0, 0)

	backup(a, rave, path{root, child}, 1)

	require.Equal(t, 0, a.Node(root).Visits, "root must not accumulate visits")
	require.Equal(t, 1, a.Node(child).Visits)
	require.Equal(t, 1.0, a.Node(child).ValueSum)
}

func TestBackupUpdatesEveryNodeOnThePath(t *testing.T) {
	a := NewArena()
	rave := NewRAVEIndex()
	root := a.NewNode(placement.None, 0, 0)
	a1 := a.NewNode(placement.Placement{Cell: 0, Color: board.Black}, 0, 0)
	a2 := a.NewNode(placement.Placement{Cell: 1, Color: board.White}, 0, 0)

	backup(a, rave, path{root, a1, a2}, 0.5)

	require.Equal(t, 1, a.Node(a1).Visits)
	require.Equal(t, 1, a.Node(a2).Visits)
	require.Equal(t, 0.5, a.Node(a1).ValueSum)
	require.Equal(t, 0.5, a.Node(a2).ValueSum)
}

func TestBackupUpdatesEveryRAVESiblingSharingAPlacement(t *testing.T) {
	a := NewArena()
	rave := NewRAVEIndex()
	root := a.NewNode(placement.None, 0, 0)

	p := placement.Placement{Cell: 4, Color: board.Black}
	pathNode := a.NewNode(p, 0, 0)

	sibling := a.NewNode(p, 0, 0)
	rave.Register(p, pathNode)
	rave.Register(p, sibling)

	backup(a, rave, path{root, pathNode}, 1)

	require.Equal(t, 1.0, a.Node(pathNode).RaveVisits)
	require.Equal(t, 1.0, a.Node(sibling).RaveVisits, "AMAF credit must fan out to every node sharing the placement")
	require.Equal(t, 1.0, a.Node(sibling).RaveValueSum)
}
