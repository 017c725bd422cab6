package gomoku

// Snapshot captures the complete engine state for rendering and testing.
type Snapshot struct {
	Size        int
	Cells       [][]Cell // Cells[y][x]
	Turn        Cell
	Outcome     Outcome
	Moves       int
	LastMove    Point
	HasLastMove bool
	WinningLine []Point
}

// Snapshot returns a copy of the current state. Mutating it does not
// affect the engine.
func (e *Engine) Snapshot() Snapshot {
	n := e.board.size
	cells := make([][]Cell, n)
	for y := range n {
		cells[y] = make([]Cell, n)
		copy(cells[y], e.board.cells[y*n:(y+1)*n])
	}

	return Snapshot{
		Size:        n,
		Cells:       cells,
		Turn:        e.turn,
		Outcome:     e.outcome,
		Moves:       e.moves,
		LastMove:    e.last,
		HasLastMove: e.hasLast,
		WinningLine: e.WinningLine(),
	}
}

// OnLine reports whether (x, y) belongs to the winning line.
func (s Snapshot) OnLine(x, y int) bool {
	for _, p := range s.WinningLine {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}
