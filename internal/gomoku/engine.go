package gomoku

import "fmt"

// Status is the phase of a game.
type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon
)

// Outcome is either InProgress or Won(Winner).
// Winner is Empty unless Status is StatusWon.
type Outcome struct {
	Status Status
	Winner Cell
}

// InProgress is the outcome of a game that still accepts moves.
func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

// Won is the terminal outcome for the given colour.
func Won(c Cell) Outcome {
	return Outcome{Status: StatusWon, Winner: c}
}

// Over reports whether the game is terminal.
func (o Outcome) Over() bool {
	return o.Status == StatusWon
}

func (o Outcome) String() string {
	if o.Over() {
		return fmt.Sprintf("Won(%s)", o.Winner)
	}
	return "InProgress"
}

// Engine owns one board plus the turn and outcome state.
// The board is only written through ApplyMove and cleared by Reset.
//
// An Engine is not safe for concurrent use; each host session owns its own.
type Engine struct {
	board   *Board
	turn    Cell
	outcome Outcome
	moves   int
	last    Point
	hasLast bool
	line    []Point
}

// NewEngine creates an engine with an empty board of the given size.
func NewEngine(size int) *Engine {
	e := &Engine{board: NewBoard(size)}
	e.Reset()
	return e
}

// Reset returns the engine to its initial configuration:
// empty board, Black to move, game in progress.
func (e *Engine) Reset() {
	e.board.Reset()
	e.turn = Black
	e.outcome = InProgress()
	e.moves = 0
	e.last = Point{}
	e.hasLast = false
	e.line = nil
}

// ApplyMove places the current player's stone at (x, y).
// Preconditions are checked in order: bounds, game not over, cell empty.
// A rejected move leaves the engine untouched.
func (e *Engine) ApplyMove(x, y int) (Outcome, error) {
	if !e.board.InBounds(x, y) {
		return e.outcome, ErrOutOfBounds
	}
	if e.outcome.Over() {
		return e.outcome, ErrGameOver
	}
	if e.board.at(x, y) != Empty {
		return e.outcome, ErrCellOccupied
	}

	mover := e.turn
	e.board.cells[y*e.board.size+x] = mover
	e.moves++
	e.last = Point{X: x, Y: y}
	e.hasLast = true

	if e.board.IsWin(x, y) {
		e.outcome = Won(mover)
		e.line = e.board.WinningLine(x, y)
		return e.outcome, nil
	}

	e.turn = mover.Opponent()
	return e.outcome, nil
}

// Outcome returns the current outcome.
func (e *Engine) Outcome() Outcome {
	return e.outcome
}

// Turn returns the colour that moves next. After a win it stays on the winner.
func (e *Engine) Turn() Cell {
	return e.turn
}

// Cell returns the content of (x, y).
func (e *Engine) Cell(x, y int) (Cell, error) {
	return e.board.Get(x, y)
}

// Size returns the board side length.
func (e *Engine) Size() int {
	return e.board.Size()
}

// Moves returns the number of stones placed since the last reset.
func (e *Engine) Moves() int {
	return e.moves
}

// LastMove returns the most recent accepted move, if any.
func (e *Engine) LastMove() (Point, bool) {
	return e.last, e.hasLast
}

// WinningLine returns the stones of the run that ended the game,
// or nil while the game is in progress.
func (e *Engine) WinningLine() []Point {
	if e.line == nil {
		return nil
	}
	out := make([]Point, len(e.line))
	copy(out, e.line)
	return out
}

// Full reports whether every cell holds a stone. The rules declare no draw,
// so a full board without a winner is still InProgress.
func (e *Engine) Full() bool {
	return e.board.Count(Empty) == 0
}
