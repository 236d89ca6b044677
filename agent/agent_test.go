package agent

import (
	"testing"

	"nogoagent/board"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestTakeActionWithRandomPloyReturnsALegalPlacement(t *testing.T) {
	cfg, err := ParseConfig("name=baseline role=black seed=7")
	require.NoError(t, err)
	a := New(cfg, zerolog.Nop())

	var b board.Board
	p := a.TakeAction(b)

	require.False(t, p.IsSentinel())
	require.Equal(t, board.Black, p.Color)
	_, legal := b.TryPlace(p.Cell, board.Black)
	require.Equal(t, board.Legal, legal)
}

func TestTakeActionWithMCTSPloyReturnsALegalPlacement(t *testing.T) {
	cfg, err := ParseConfig("name=searcher role=white ploy=mcts seed=3 S=64")
	require.NoError(t, err)
	a := New(cfg, zerolog.Nop())

	var b board.Board
	p := a.TakeAction(b)

	require.False(t, p.IsSentinel())
	require.Equal(t, board.White, p.Color)
}

func TestOpenCloseEpisodeDoesNotPanicForRandomPloy(t *testing.T) {
	cfg, err := ParseConfig("role=black")
	require.NoError(t, err)
	a := New(cfg, zerolog.Nop())

	require.NotPanics(t, func() {
		a.OpenEpisode()
		a.CloseEpisode()
	})
}

func TestNameAndRoleReflectConfig(t *testing.T) {
	cfg, err := ParseConfig("name=p1 role=white")
	require.NoError(t, err)
	a := New(cfg, zerolog.Nop())

	require.Equal(t, "p1", a.Name())
	require.Equal(t, board.White, a.Role())
}
