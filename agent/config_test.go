package agent

import (
	"testing"
	"time"

	"nogoagent/board"

	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaultsNameAndPloy(t *testing.T) {
	cfg, err := ParseConfig("role=black")
	require.NoError(t, err)
	require.Equal(t, "random", cfg.Name)
	require.Equal(t, board.Black, cfg.Role)
	require.Equal(t, RandomPloy, cfg.Ploy)
}

func TestParseConfigRejectsInvalidName(t *testing.T) {
	_, err := ParseConfig("name=bad;name role=black")
	require.Error(t, err)
}

func TestParseConfigRejectsMissingRole(t *testing.T) {
	_, err := ParseConfig("name=ok")
	require.Error(t, err)
}

func TestParseConfigParsesMCTSPloy(t *testing.T) {
	cfg, err := ParseConfig("role=white ploy=mcts")
	require.NoError(t, err)
	require.Equal(t, MCTSPloy, cfg.Ploy)
	require.Equal(t, board.White, cfg.Role)
}

func TestParseConfigParsesSeedAndBudget(t *testing.T) {
	cfg, err := ParseConfig("role=black ploy=mcts seed=42 T=2.5 S=1000")
	require.NoError(t, err)
	require.Equal(t, uint64(42), cfg.Seed)
	require.Equal(t, 2500*time.Microsecond, cfg.T)
	require.Equal(t, 1000, cfg.SMax)
}

func TestParseConfigAcceptsSMaxKey(t *testing.T) {
	cfg, err := ParseConfig("role=black ploy=mcts S_MAX=500")
	require.NoError(t, err)
	require.Equal(t, 500, cfg.SMax)
}

func TestParseConfigRejectsMalformedPair(t *testing.T) {
	_, err := ParseConfig("role=black garbage")
	require.Error(t, err)
}

func TestParseConfigRejectsNonNumericSeed(t *testing.T) {
	_, err := ParseConfig("role=black seed=notanumber")
	require.Error(t, err)
}

func TestParseConfigCarriesTestID(t *testing.T) {
	cfg, err := ParseConfig("role=black testId=run-7")
	require.NoError(t, err)
	require.Equal(t, "run-7", cfg.TestID)
}
