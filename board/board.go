// Package board implements the 9x9 NoGo board: occupancy, geometry, and
// the legality check the search engine treats as an external collaborator.
package board

import "fmt"

// Size is the board's side length. N is the board's total cell count.
const (
	Size = 9
	N    = Size * Size
)

// Color is a cell occupant.
type Color int8

const (
	Empty Color = iota
	Black
	White
)

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Opponent returns the other playing color. Calling it on Empty panics.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		panic("board: Empty has no opponent")
	}
}

// Cell is a 0..N-1 index into the board's backing array.
type Cell int

// Coord converts a Cell to (x, y) board coordinates.
func (c Cell) Coord() (x, y int) {
	return int(c) % Size, int(c) / Size
}

func (c Cell) String() string {
	x, y := c.Coord()
	return fmt.Sprintf("%d,%d", x, y)
}

// CellAt converts (x, y) board coordinates to a Cell.
func CellAt(x, y int) Cell {
	return Cell(y*Size + x)
}

// Legality is the outcome of a TryPlace call.
type Legality int8

const (
	Illegal Legality = iota
	Legal
)

// Board is a value-semantics 9x9 NoGo board. The zero value is an empty board.
type Board struct {
	cells [N]Color
}

// Occupant returns the color occupying a cell.
func (b Board) Occupant(c Cell) Color {
	return b.cells[c]
}

// Cells returns every cell index on the board, in ascending order.
func (b Board) Cells() []Cell {
	cells := make([]Cell, N)
	for i := range cells {
		cells[i] = Cell(i)
	}
	return cells
}

// neighbors returns the orthogonal neighbors of a cell, in ascending order.
func neighbors(c Cell) []Cell {
	x, y := c.Coord()
	out := make([]Cell, 0, 4)
	if y > 0 {
		out = append(out, CellAt(x, y-1))
	}
	if x > 0 {
		out = append(out, CellAt(x-1, y))
	}
	if x < Size-1 {
		out = append(out, CellAt(x+1, y))
	}
	if y < Size-1 {
		out = append(out, CellAt(x, y+1))
	}
	return out
}

// Liberties counts the empty orthogonal neighbors of a cell. This is the
// single-stone liberty count used by the positional prior and the rollout
// policy's bucketing, distinct from the group-level liberty check TryPlace
// performs for legality.
func (b Board) Liberties(c Cell) int {
	n := 0
	for _, nb := range neighbors(c) {
		if b.cells[nb] == Empty {
			n++
		}
	}
	return n
}

// TryPlace attempts to place a stone of the given color at the given cell.
// It never mutates the receiver: on a Legal result it returns the resulting
// board as a new value; on Illegal it returns the receiver unchanged.
func (b Board) TryPlace(c Cell, color Color) (Board, Legality) {
	if b.cells[c] != Empty {
		return b, Illegal
	}

	after := b
	after.cells[c] = color

	if !after.groupHasLiberty(c) {
		return b, Illegal
	}

	opponent := color.Opponent()
	for _, nb := range neighbors(c) {
		if after.cells[nb] == opponent && !after.groupHasLiberty(nb) {
			return b, Illegal
		}
	}

	return after, Legal
}

// groupHasLiberty flood-fills the orthogonally-connected group containing c
// and reports whether any stone in it borders an empty cell.
func (b Board) groupHasLiberty(c Cell) bool {
	color := b.cells[c]
	visited := make(map[Cell]bool, N)
	stack := []Cell{c}
	visited[c] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, nb := range neighbors(cur) {
			switch b.cells[nb] {
			case Empty:
				return true
			case color:
				if !visited[nb] {
					visited[nb] = true
					stack = append(stack, nb)
				}
			}
		}
	}
	return false
}

// LegalMoves enumerates every cell at which color may legally place a stone,
// in ascending cell order.
func (b Board) LegalMoves(color Color) []Cell {
	moves := make([]Cell, 0, N)
	for i := 0; i < N; i++ {
		c := Cell(i)
		if _, legal := b.TryPlace(c, color); legal == Legal {
			moves = append(moves, c)
		}
	}
	return moves
}
