package search

import (
	"math"

	"nogoagent/board"

	"golang.org/x/exp/rand"
)

// Policy selects how a leaf's value is estimated.
type Policy int

const (
	// RolloutPolicy simulates liberty-bucketed alternating play to
	// terminal. The player who cannot move loses.
	RolloutPolicy Policy = iota
	// DifferentialPolicy scores the leaf directly from legal-move counts,
	// without simulating a rollout.
	DifferentialPolicy
)

// evaluate runs the configured policy at leaf state b with side to move,
// returning the playout outcome from the engine's fixed perspective. The
// rollout policy returns 1 (engine wins) or 0 (engine loses); the
// differential policy returns a value in (-1, 1).
func evaluate(policy Policy, b board.Board, side board.Color, engineColor board.Color, rng *rand.Rand) float64 {
	if policy == DifferentialPolicy {
		return differential(b, engineColor)
	}
	return rollout(b, side, engineColor, rng)
}

// differential scores a leaf as tanh((a-b)/(a+b)) over legal placement
// counts, 0 when both counts are zero.
func differential(b board.Board, engineColor board.Color) float64 {
	a := len(b.LegalMoves(engineColor))
	c := len(b.LegalMoves(engineColor.Opponent()))
	if a+c == 0 {
		return 0
	}
	return math.Tanh(float64(a-c) / float64(a+c))
}

// rollout alternates play via the liberty-bucketed policy until the side
// to move has no legal placement; that side loses.
func rollout(b board.Board, side board.Color, engineColor board.Color, rng *rand.Rand) float64 {
	for {
		move, ok := pickLibertyBucketedMove(b, side, rng)
		if !ok {
			if side.Opponent() == engineColor {
				return 1
			}
			return 0
		}
		b, _ = b.TryPlace(move, side)
		side = side.Opponent()
	}
}

// pickLibertyBucketedMove partitions candidates by empty-orthogonal-neighbor
// count into buckets {4, 3, 2, <=1}, tried high-to-low; within a bucket,
// candidates are shuffled and the first legal one is played.
func pickLibertyBucketedMove(b board.Board, side board.Color, rng *rand.Rand) (board.Cell, bool) {
	var buckets [4][]board.Cell
	for _, c := range b.Cells() {
		if b.Occupant(c) != board.Empty {
			continue
		}
		buckets[bucketIndex(b.Liberties(c))] = append(buckets[bucketIndex(b.Liberties(c))], c)
	}

	for _, bucket := range buckets {
		rng.Shuffle(len(bucket), func(i, j int) {
			bucket[i], bucket[j] = bucket[j], bucket[i]
		})
		for _, c := range bucket {
			if _, legality := b.TryPlace(c, side); legality == board.Legal {
				return c, true
			}
		}
	}
	return 0, false
}

// bucketIndex maps a liberty count to its bucket: 0 for 4 liberties (tried
// first), down to 3 for <=1 liberty (tried last).
func bucketIndex(liberties int) int {
	idx := 4 - liberties
	if idx < 0 {
		return 0
	}
	if idx > 3 {
		return 3
	}
	return idx
}
