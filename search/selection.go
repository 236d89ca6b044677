package search

import (
	"math"

	"nogoagent/board"
)

// descendByScore picks one child of a non-leaf node. An unvisited child is
// returned immediately (first such child in child order). Otherwise each
// child's score blends UCB1, mean value, RAVE value, and its positional
// prior; the min-max rule on the mover's color picks the maximum score when
// the mover is the engine's own color and the minimum otherwise. Ties are
// broken by child-order ascending.
func descendByScore(arena *Arena, node NodeHandle, engineColor board.Color) NodeHandle {
	n := arena.Node(node)
	if len(n.Children) == 0 {
		panic("search: descendByScore called on a node with no children")
	}

	total := 0
	for _, ch := range n.Children {
		total += arena.Node(ch).Visits
	}

	var best NodeHandle = NoNode
	var bestScore float64
	for i, ch := range n.Children {
		c := arena.Node(ch)
		if c.Visits == 0 {
			return ch
		}

		score := scoreOf(c, total)
		maximize := c.IncomingPlacement.Color == engineColor

		if i == 0 {
			best, bestScore = ch, score
			continue
		}
		if maximize && score > bestScore {
			best, bestScore = ch, score
		} else if !maximize && score < bestScore {
			best, bestScore = ch, score
		}
	}
	return best
}

func scoreOf(c *Node, totalVisits int) float64 {
	q := c.ValueSum / float64(c.Visits)
	qRave := c.RaveValueSum / c.RaveVisits
	u := math.Sqrt(2 * math.Log(float64(totalVisits)) / float64(c.Visits))
	return (1-RAVEBeta)*q + RAVEBeta*qRave + u + c.Prior
}
