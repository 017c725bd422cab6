// Package gomoku implements the rules of five-in-a-row: the board grid,
// move validation, turn alternation and win detection.
// It has no rendering or terminal dependencies so it can be driven by any host.
package gomoku

// Cell is the content of a single board intersection.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

// String returns a human-readable name for the cell.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Unknown"
	}
}

// Opponent returns the other stone colour. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// DefaultSize is the side length of a standard board.
const DefaultSize = 15

// Board is a square grid of cells addressed by (x, y), 0 <= x, y < Size().
// It stores stones and nothing else; occupancy rules belong to Engine.
type Board struct {
	size  int
	cells []Cell // row-major: cells[y*size+x]
}

// NewBoard creates an empty board with the given side length.
// Non-positive sizes fall back to DefaultSize.
func NewBoard(size int) *Board {
	if size <= 0 {
		size = DefaultSize
	}
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether (x, y) addresses a cell on this board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.size && y >= 0 && y < b.size
}

// Get returns the cell at (x, y).
func (b *Board) Get(x, y int) (Cell, error) {
	if !b.InBounds(x, y) {
		return Empty, ErrOutOfBounds
	}
	return b.cells[y*b.size+x], nil
}

// Set overwrites the cell at (x, y) without checking occupancy.
func (b *Board) Set(x, y int, c Cell) error {
	if !b.InBounds(x, y) {
		return ErrOutOfBounds
	}
	b.cells[y*b.size+x] = c
	return nil
}

// Reset clears every cell.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
}

// at is the unchecked accessor used once bounds are already known.
func (b *Board) at(x, y int) Cell {
	return b.cells[y*b.size+x]
}

// Count returns how many cells hold c.
func (b *Board) Count(c Cell) int {
	n := 0
	for _, v := range b.cells {
		if v == c {
			n++
		}
	}
	return n
}
