package search

import (
	"nogoagent/board"
	"nogoagent/placement"

	"github.com/samber/lo"
)

// PriorFunc computes a child's positional prior at creation time.
type PriorFunc func(b board.Board, c board.Cell) float64

// expand enumerates every legal placement for the side to move at leaf and
// appends one child per placement, in cell-index ascending order, each
// registered in the RAVE index with the RAVE virtual priors. Idempotent via
// the Expanded flag (an already-expanded node may legitimately have zero
// children, if the side to move was stalemated).
func expand(arena *Arena, rave *RAVEIndex, leaf NodeHandle, b board.Board, side board.Color, prior PriorFunc) {
	if arena.Node(leaf).Expanded {
		return
	}

	legal := lo.Filter(b.Cells(), func(c board.Cell, _ int) bool {
		_, legality := b.TryPlace(c, side)
		return legality == board.Legal
	})

	children := make([]NodeHandle, 0, len(legal))
	for _, c := range legal {
		p := placement.Placement{Cell: c, Color: side}
		h := arena.NewNode(p, RAVEPriorVisits, RAVEPriorValue)
		arena.Node(h).Prior = prior(b, c)
		children = append(children, h)
		rave.Register(p, h)
	}

	// arena.NewNode above may have reallocated the backing slice, so leaf's
	// node must be re-fetched by handle rather than reused from before the
	// loop.
	n := arena.Node(leaf)
	n.Children = children
	n.Expanded = true
}
