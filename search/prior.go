package search

import "nogoagent/board"

// Prior computes the positional selection bonus: a small bonus for moves
// with fewer empty neighbors (contact/shape moves). This is the
// single-stone liberty count, not the group-level liberty TryPlace checks
// for legality.
func Prior(b board.Board, c board.Cell) float64 {
	return float64(4-b.Liberties(c)) / 8
}
