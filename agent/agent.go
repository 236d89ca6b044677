package agent

import (
	"nogoagent/board"
	"nogoagent/placement"
	"nogoagent/search"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// Agent drives either the search engine or the random baseline behind a
// single take-action entry point, selected at construction time by the
// parsed Config's Ploy.
type Agent struct {
	cfg  Config
	log  zerolog.Logger
	mcts *search.MCTS
	rng  *rand.Rand
}

// New constructs an Agent from a parsed Config. The name/role validation
// already happened in ParseConfig; New only wires up the move-picking
// strategy it selected.
func New(cfg Config, log zerolog.Logger, opts ...search.Option) *Agent {
	a := &Agent{
		cfg: cfg,
		log: log.With().Str("agent", cfg.Name).Str("role", cfg.Role.String()).Logger(),
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}

	if cfg.Ploy == MCTSPloy {
		searchOpts := []search.Option{search.WithSeed(cfg.Seed), search.WithLogger(a.log)}
		if cfg.SMax > 0 {
			searchOpts = append(searchOpts, search.WithIterationCap(cfg.SMax))
		}
		if cfg.T > 0 {
			searchOpts = append(searchOpts, search.WithDuration(cfg.T))
		}
		searchOpts = append(searchOpts, opts...)
		a.mcts = search.NewMCTS(cfg.Role, searchOpts...)
	}

	return a
}

// TakeAction returns the agent's chosen placement for the given board.
func (a *Agent) TakeAction(b board.Board) placement.Placement {
	if a.mcts != nil {
		p, report := a.mcts.Move(b)
		a.log.Info().
			Int64("episodes", report.Episodes).
			Int64("full_playouts", report.FullPlayouts).
			Dur("duration", report.Duration).
			Msg("move chosen")
		return p
	}
	return a.randomAction(b)
}

// randomAction implements the framework's random_action baseline: shuffle
// every cell and return the first one that is legal for this agent's role.
func (a *Agent) randomAction(b board.Board) placement.Placement {
	cells := b.Cells()
	a.rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
	for _, c := range cells {
		if _, legal := b.TryPlace(c, a.cfg.Role); legal == board.Legal {
			return placement.Placement{Cell: c, Color: a.cfg.Role}
		}
	}
	return placement.Resign
}

// OpenEpisode resets any retained search tree for a fresh game.
func (a *Agent) OpenEpisode() {
	if a.mcts != nil {
		a.mcts.OpenEpisode()
	}
}

// CloseEpisode tears down the retained search tree at the end of a game.
func (a *Agent) CloseEpisode() {
	if a.mcts != nil {
		a.mcts.CloseEpisode()
	}
}

// Name returns the agent's configured name.
func (a *Agent) Name() string { return a.cfg.Name }

// Role returns the color this agent plays.
func (a *Agent) Role() board.Color { return a.cfg.Role }
