package gomoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playMoves applies moves in order and fails the test on any rejection.
// It returns the outcome after the last move.
func playMoves(t *testing.T, e *Engine, moves ...Point) Outcome {
	t.Helper()
	var out Outcome
	for i, m := range moves {
		var err error
		out, err = e.ApplyMove(m.X, m.Y)
		require.NoError(t, err, "move %d (%d,%d)", i, m.X, m.Y)
	}
	return out
}

// assertInitial checks the post-reset configuration.
func assertInitial(t *testing.T, e *Engine) {
	t.Helper()
	assert.Equal(t, Black, e.Turn())
	assert.Equal(t, InProgress(), e.Outcome())
	assert.Zero(t, e.Moves())
	assert.Nil(t, e.WinningLine())
	_, ok := e.LastMove()
	assert.False(t, ok)
	for y := range e.Size() {
		for x := range e.Size() {
			c, err := e.Cell(x, y)
			require.NoError(t, err)
			require.Equal(t, Empty, c, "cell (%d,%d)", x, y)
		}
	}
}

func TestNewEngineInitialState(t *testing.T) {
	e := NewEngine(DefaultSize)
	assert.Equal(t, 15, e.Size())
	assertInitial(t, e)
}

func TestApplyMoveOutOfBounds(t *testing.T) {
	e := NewEngine(15)
	playMoves(t, e, Point{7, 7})
	before := e.Snapshot()

	cases := []Point{{15, 0}, {0, 15}, {15, 15}, {100, 3}, {-1, 0}, {0, -1}}
	for _, p := range cases {
		out, err := e.ApplyMove(p.X, p.Y)
		assert.ErrorIs(t, err, ErrOutOfBounds, "move %v", p)
		assert.Equal(t, InProgress(), out)
	}

	assert.Equal(t, before, e.Snapshot())
}

func TestApplyMoveOccupied(t *testing.T) {
	e := NewEngine(15)
	playMoves(t, e, Point{3, 3})
	require.Equal(t, White, e.Turn())

	_, err := e.ApplyMove(3, 3)
	assert.ErrorIs(t, err, ErrCellOccupied)
	assert.Equal(t, White, e.Turn(), "rejected move must not flip the turn")
	assert.Equal(t, 1, e.Moves())

	c, _ := e.Cell(3, 3)
	assert.Equal(t, Black, c)
}

func TestTurnAlternatesOnlyOnAcceptedMoves(t *testing.T) {
	e := NewEngine(15)
	want := Black
	attempts := []struct {
		p        Point
		accepted bool
	}{
		{Point{0, 0}, true},
		{Point{0, 0}, false},
		{Point{1, 0}, true},
		{Point{20, 0}, false},
		{Point{2, 0}, true},
		{Point{1, 0}, false},
		{Point{3, 0}, true},
	}

	for i, a := range attempts {
		require.Equal(t, want, e.Turn(), "attempt %d", i)
		_, err := e.ApplyMove(a.p.X, a.p.Y)
		if a.accepted {
			require.NoError(t, err)
			want = want.Opponent()
		} else {
			require.Error(t, err)
		}
	}
	assert.Equal(t, 4, e.Moves())
}

func TestApplyMoveChecksBoundsBeforeGameOver(t *testing.T) {
	e := NewEngine(15)
	// Black builds a row on y=0, White answers on y=1.
	playMoves(t, e,
		Point{0, 0}, Point{0, 1},
		Point{1, 0}, Point{1, 1},
		Point{2, 0}, Point{2, 1},
		Point{3, 0}, Point{3, 1},
		Point{4, 0},
	)
	require.True(t, e.Outcome().Over())

	_, err := e.ApplyMove(15, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = e.ApplyMove(0, 0)
	assert.ErrorIs(t, err, ErrGameOver, "game over is checked before occupancy")
	_, err = e.ApplyMove(9, 9)
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestHorizontalWinScenario(t *testing.T) {
	e := NewEngine(15)
	black := []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	white := []Point{{0, 5}, {1, 5}, {2, 5}, {3, 5}}

	for i := range black {
		out := playMoves(t, e, black[i])
		assert.Equal(t, InProgress(), out)
		out = playMoves(t, e, white[i])
		assert.Equal(t, InProgress(), out)
	}

	out := playMoves(t, e, Point{4, 0})
	assert.Equal(t, Won(Black), out)
	assert.Equal(t, Won(Black), e.Outcome())
	assert.Equal(t, Black, e.Turn(), "turn is not flipped after a win")
	assert.Equal(t, []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}, e.WinningLine())
}

func TestVerticalWinForWhite(t *testing.T) {
	e := NewEngine(15)
	out := playMoves(t, e,
		Point{0, 0}, Point{0, 1},
		Point{1, 1}, Point{0, 2},
		Point{2, 2}, Point{0, 3},
		Point{3, 3}, Point{0, 4},
	)
	// Four white stones on x=0 are not enough.
	assert.Equal(t, InProgress(), out)

	out = playMoves(t, e, Point{10, 10}, Point{0, 5})
	assert.Equal(t, Won(White), out)
	assert.Equal(t, White, e.Turn())
}

func TestDiagonalWinAtBottomRightCorner(t *testing.T) {
	e := NewEngine(15)
	out := playMoves(t, e,
		Point{14, 14}, Point{0, 0},
		Point{13, 13}, Point{0, 1},
		Point{12, 12}, Point{0, 2},
		Point{11, 11}, Point{0, 3},
	)
	assert.Equal(t, InProgress(), out)

	out = playMoves(t, e, Point{10, 10})
	assert.Equal(t, Won(Black), out)
	assert.Len(t, e.WinningLine(), 5)
}

func TestAntiDiagonalWin(t *testing.T) {
	e := NewEngine(15)
	out := playMoves(t, e,
		Point{4, 10}, Point{0, 0},
		Point{5, 9}, Point{0, 1},
		Point{7, 7}, Point{0, 2},
		Point{8, 6}, Point{0, 3},
		Point{6, 8},
	)
	assert.Equal(t, Won(Black), out)
}

func TestOverlineWins(t *testing.T) {
	e := NewEngine(15)
	// Black fills (0..2,7) and (4..6,7); the move at (3,7) joins a run of seven.
	out := playMoves(t, e,
		Point{0, 7}, Point{0, 0},
		Point{1, 7}, Point{1, 0},
		Point{2, 7}, Point{2, 0},
		Point{4, 7}, Point{0, 14},
		Point{5, 7}, Point{1, 14},
		Point{6, 7}, Point{2, 14},
		Point{3, 7},
	)
	assert.Equal(t, Won(Black), out)
	assert.Len(t, e.WinningLine(), 7)
}

func TestGameOverRejectsUntilReset(t *testing.T) {
	e := NewEngine(15)
	playMoves(t, e,
		Point{0, 0}, Point{0, 1},
		Point{1, 0}, Point{1, 1},
		Point{2, 0}, Point{2, 1},
		Point{3, 0}, Point{3, 1},
		Point{4, 0},
	)
	before := e.Snapshot()

	for i := range 5 {
		out, err := e.ApplyMove(7, 7+i)
		assert.ErrorIs(t, err, ErrGameOver)
		assert.Equal(t, Won(Black), out)
	}
	assert.Equal(t, before, e.Snapshot())

	e.Reset()
	assertInitial(t, e)

	out, err := e.ApplyMove(7, 7)
	require.NoError(t, err)
	assert.Equal(t, InProgress(), out)
	c, _ := e.Cell(7, 7)
	assert.Equal(t, Black, c, "black moves first after reset")
}

func TestResetMidGame(t *testing.T) {
	e := NewEngine(15)
	playMoves(t, e, Point{1, 1}, Point{2, 2}, Point{3, 3})
	require.Equal(t, White, e.Turn())

	e.Reset()
	assertInitial(t, e)
}

func TestLastMoveAndSnapshot(t *testing.T) {
	e := NewEngine(9)
	playMoves(t, e, Point{4, 4}, Point{2, 6})

	last, ok := e.LastMove()
	require.True(t, ok)
	assert.Equal(t, Point{2, 6}, last)

	snap := e.Snapshot()
	assert.Equal(t, 9, snap.Size)
	assert.Equal(t, Black, snap.Cells[4][4])
	assert.Equal(t, White, snap.Cells[6][2])
	assert.Equal(t, 2, snap.Moves)

	// Snapshot is a copy.
	snap.Cells[0][0] = White
	c, _ := e.Cell(0, 0)
	assert.Equal(t, Empty, c)
}

func TestFullBoardWithoutWinStaysInProgress(t *testing.T) {
	e := NewEngine(4)
	// Lines of five cannot fit on a 4x4 board.
	for y := range 4 {
		for x := range 4 {
			out, err := e.ApplyMove(x, y)
			require.NoError(t, err)
			require.Equal(t, InProgress(), out)
		}
	}
	assert.True(t, e.Full())

	_, err := e.ApplyMove(0, 0)
	assert.ErrorIs(t, err, ErrCellOccupied)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "InProgress", InProgress().String())
	assert.Equal(t, "Won(White)", Won(White).String())
	assert.False(t, InProgress().Over())
	assert.True(t, Won(Black).Over())
}

func TestPointerToCell(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		wantX  int
		wantY  int
	}{
		{"origin", 15, 15, 0, 0},
		{"exact intersection", 45, 75, 1, 2},
		{"rounds down", 29, 15, 0, 0},
		{"rounds up", 31, 15, 1, 0},
		{"last cell", 435, 435, 14, 14},
		{"past the edge", 455, 15, 15, 0},
		{"before origin", -10, 15, -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := PointerToCell(tc.px, tc.py, 15, 15, 30, 30)
			assert.Equal(t, tc.wantX, x)
			assert.Equal(t, tc.wantY, y)
		})
	}
}

func TestPointerToCellRejectedByEngine(t *testing.T) {
	e := NewEngine(15)
	x, y := PointerToCell(455, 15, 15, 15, 30, 30)
	_, err := e.ApplyMove(x, y)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	x, y = PointerToCell(10, 10, 0, 0, 0, 1)
	_, err = e.ApplyMove(x, y)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
