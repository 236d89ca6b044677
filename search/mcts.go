// Package search implements the MCTS engine: selection, expansion, playout,
// backup, the search driver, and root reuse across moves.
package search

import (
	"time"

	"nogoagent/board"
	"nogoagent/placement"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Option configures an MCTS at construction time.
type Option func(*MCTS)

// WithIterationCap overrides S_MAX, the per-move simulation cap.
func WithIterationCap(cap int) Option {
	return func(m *MCTS) {
		if cap > 0 {
			m.iterationCap = cap
		}
	}
}

// WithDuration sets T, the per-move wall-clock budget.
func WithDuration(d time.Duration) Option {
	return func(m *MCTS) {
		if d > 0 {
			m.duration = d
		}
	}
}

// WithPolicy selects the playout policy.
func WithPolicy(p Policy) Option {
	return func(m *MCTS) { m.policy = p }
}

// WithPrior overrides the positional prior function.
func WithPrior(p PriorFunc) Option {
	return func(m *MCTS) {
		if p != nil {
			m.prior = p
		}
	}
}

// WithSeed seeds the single RNG the engine uses for every tie-break and
// shuffle, making runs reproducible given seed and budget.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) { m.rng = rand.New(rand.NewSource(seed)) }
}

// WithMetrics attaches a Collector; by default the atomic-counter Collector
// from NewCollector is used.
func WithMetrics(c Collector) Option {
	return func(m *MCTS) {
		if c != nil {
			m.metrics = c
		}
	}
}

// WithLogger overrides the engine's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(m *MCTS) { m.log = l }
}

// MCTS is a single-threaded, strictly sequential Monte-Carlo tree search
// engine for one side of a NoGo game: no suspension points, no cancellation
// hooks other than budget expiry.
type MCTS struct {
	engineColor  board.Color
	iterationCap int
	duration     time.Duration
	policy       Policy
	prior        PriorFunc
	rng          *rand.Rand
	metrics      Collector
	log          zerolog.Logger

	arena     *Arena
	rave      *RAVEIndex
	root      NodeHandle
	rootBoard board.Board
}

// NewMCTS constructs an engine playing engineColor.
func NewMCTS(engineColor board.Color, opts ...Option) *MCTS {
	m := &MCTS{
		engineColor:  engineColor,
		iterationCap: DefaultIterationCap,
		policy:       RolloutPolicy,
		prior:        Prior,
		rng:          rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:      NewCollector(),
		log:          log.Logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.resetRoot()
	return m
}

// OpenEpisode initializes a fresh empty root.
func (m *MCTS) OpenEpisode() {
	m.resetRoot()
}

// CloseEpisode tears down the entire tree and RAVE index.
func (m *MCTS) CloseEpisode() {
	m.resetRoot()
}

// Move advances the retained root against b, runs simulations under the
// configured budget, then returns the most-visited root child's placement
// (or the no-move sentinel).
func (m *MCTS) Move(b board.Board) (placement.Placement, SearchReport) {
	episodeID := uuid.NewString()
	reused := m.advanceRoot(b)

	root := m.arena.Node(m.root)
	if !root.Expanded {
		expand(m.arena, m.rave, m.root, b, m.engineColor, m.prior)
	}

	m.metrics.Start()
	m.metrics.SetTreeReused(reused)
	var deadline time.Time
	if m.duration > 0 {
		deadline = time.Now().Add(m.duration)
	}
	episodes := m.runSearch(b, deadline)
	report := m.metrics.Complete()

	m.log.Debug().
		Str("episode", episodeID).
		Int64("episodes", report.Episodes).
		Bool("tree_reused", report.TreeReused).
		Dur("duration", report.Duration).
		Msg("search complete")

	if episodes == 0 {
		// Budget underflow: zero simulations completed, so visit counts
		// carry no information. Resign rather than guess.
		m.log.Warn().Str("episode", episodeID).Msg("budget underflow: returning resignation sentinel")
		return placement.Resign, report
	}

	root = m.arena.Node(m.root)
	if len(root.Children) == 0 {
		m.log.Warn().Str("episode", episodeID).Msg("no legal placement at root")
		return placement.Resign, report
	}

	best := root.Children[0]
	bestVisits := m.arena.Node(best).Visits
	for _, ch := range root.Children[1:] {
		if v := m.arena.Node(ch).Visits; v > bestVisits {
			best, bestVisits = ch, v
		}
	}

	chosen := m.arena.Node(best).IncomingPlacement
	m.rebuildFrom(best)
	m.rootBoard, _ = m.rootBoard.TryPlace(chosen.Cell, chosen.Color)
	return chosen, report
}

// runSearch repeats selection/expansion/playout/backup until the iteration
// cap is reached or the wall-clock deadline passes, and returns how many
// simulations actually ran. The deadline is checked once per loop iteration,
// before the next simulation starts, which covers the budget-underflow
// case where the deadline has already passed before any simulation runs.
func (m *MCTS) runSearch(b board.Board, deadline time.Time) int64 {
	var episodes int64
	for int(episodes) < m.iterationCap {
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
		m.simulate(b)
		episodes++
		m.metrics.AddEpisode()
	}
	return episodes
}

// simulate runs one selection -> expansion -> playout -> backup cycle
// starting from the retained root against the live board state b.
func (m *MCTS) simulate(initial board.Board) {
	wb := initial
	side := m.engineColor
	node := m.root
	p := path{node}

	for m.arena.Node(node).Expanded && len(m.arena.Node(node).Children) > 0 {
		child := descendByScore(m.arena, node, m.engineColor)
		placed := m.arena.Node(child).IncomingPlacement
		wb, _ = wb.TryPlace(placed.Cell, placed.Color)
		side = side.Opponent()
		node = child
		p = append(p, node)
	}

	expand(m.arena, m.rave, node, wb, side, m.prior)

	v := evaluate(m.policy, wb, side, m.engineColor, m.rng)
	if m.policy == RolloutPolicy {
		m.metrics.AddFullPlayout()
	}

	backup(m.arena, m.rave, p, v)
}

// advanceRoot finds the unique retained-root child whose placement, applied
// to the board the root was last known to represent, reproduces b exactly,
// discards the other subtrees, and makes that child the new root. A child
// is only a candidate if its single placement accounts for the entire
// difference between the tracked root board and b; matching just the
// placed cell would let an unrelated board coincidentally line up with a
// stale child. If no child matches, discards the whole tree and starts
// fresh. Returns whether the tree was reused.
func (m *MCTS) advanceRoot(b board.Board) bool {
	root := m.arena.Node(m.root)
	matched := NoNode
	matches := 0
	for _, ch := range root.Children {
		p := m.arena.Node(ch).IncomingPlacement
		if candidate, legal := m.rootBoard.TryPlace(p.Cell, p.Color); legal == board.Legal && candidate == b {
			matched = ch
			matches++
		}
	}

	if matches != 1 {
		m.log.Debug().Int("matches", matches).Msg("root reset: no unique child matches the board")
		m.resetRoot()
		m.rootBoard = b
		return false
	}

	m.rebuildFrom(matched)
	m.rootBoard = b
	return true
}

// resetRoot discards the tree and RAVE index and installs a fresh empty
// root.
func (m *MCTS) resetRoot() {
	m.arena = NewArena()
	m.rave = NewRAVEIndex()
	m.root = m.arena.NewNode(placement.None, 0, 0)
	var zero board.Board
	m.rootBoard = zero
}

// rebuildFrom makes the subtree rooted at old the new live tree: every
// reachable node is copied into a fresh arena (remapped to fresh handles)
// and re-registered in a fresh RAVE index. The discarded nodes are simply
// not copied, and the old arena becomes unreachable.
func (m *MCTS) rebuildFrom(old NodeHandle) {
	newArena := NewArena()
	newRave := NewRAVEIndex()
	mapping := make(map[NodeHandle]NodeHandle, m.arena.Len())

	var copyNode func(h NodeHandle) NodeHandle
	copyNode = func(h NodeHandle) NodeHandle {
		if nh, ok := mapping[h]; ok {
			return nh
		}
		src := m.arena.Node(h)
		incoming := src.IncomingPlacement
		raveVisits, raveValueSum := src.RaveVisits, src.RaveValueSum
		visits, valueSum, prior, expanded := src.Visits, src.ValueSum, src.Prior, src.Expanded
		srcChildren := src.Children

		nh := newArena.NewNode(incoming, raveVisits, raveValueSum)
		mapping[h] = nh

		dst := newArena.Node(nh)
		dst.Visits = visits
		dst.ValueSum = valueSum
		dst.Prior = prior
		dst.Expanded = expanded
		newRave.Register(incoming, nh)

		children := make([]NodeHandle, len(srcChildren))
		for i, c := range srcChildren {
			children[i] = copyNode(c)
		}

		// newArena.NewNode calls made by the recursive copyNode above may have
		// reallocated the backing slice, so nh's node must be re-fetched by
		// handle rather than reusing dst from before the recursion.
		newArena.Node(nh).Children = children
		return nh
	}

	newRoot := copyNode(old)
	m.arena = newArena
	m.rave = newRave
	m.root = newRoot
}

// LiveNodes reports the number of nodes reachable from the retained root,
// for diagnostics and for root-reuse property tests.
func (m *MCTS) LiveNodes() int {
	return m.arena.Len()
}
