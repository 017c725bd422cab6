package gomoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard(DefaultSize)
	require.Equal(t, 15, b.Size())

	for y := range b.Size() {
		for x := range b.Size() {
			c, err := b.Get(x, y)
			require.NoError(t, err)
			assert.Equal(t, Empty, c, "cell (%d,%d)", x, y)
		}
	}
}

func TestNewBoardFallsBackToDefaultSize(t *testing.T) {
	assert.Equal(t, DefaultSize, NewBoard(0).Size())
	assert.Equal(t, DefaultSize, NewBoard(-3).Size())
	assert.Equal(t, 9, NewBoard(9).Size())
}

func TestBoardBounds(t *testing.T) {
	b := NewBoard(15)

	tests := []struct {
		name string
		x, y int
		ok   bool
	}{
		{"origin", 0, 0, true},
		{"last cell", 14, 14, true},
		{"x at size", 15, 0, false},
		{"y at size", 0, 15, false},
		{"both large", 100, 100, false},
		{"negative x", -1, 3, false},
		{"negative y", 3, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, getErr := b.Get(tc.x, tc.y)
			setErr := b.Set(tc.x, tc.y, Black)
			if tc.ok {
				assert.NoError(t, getErr)
				assert.NoError(t, setErr)
			} else {
				assert.ErrorIs(t, getErr, ErrOutOfBounds)
				assert.ErrorIs(t, setErr, ErrOutOfBounds)
			}
		})
	}
}

func TestBoardSetOverwrites(t *testing.T) {
	b := NewBoard(15)
	require.NoError(t, b.Set(3, 4, Black))
	require.NoError(t, b.Set(3, 4, White))

	c, err := b.Get(3, 4)
	require.NoError(t, err)
	assert.Equal(t, White, c)

	// (x, y) and (y, x) are different cells
	c, err = b.Get(4, 3)
	require.NoError(t, err)
	assert.Equal(t, Empty, c)
}

func TestBoardReset(t *testing.T) {
	b := NewBoard(15)
	require.NoError(t, b.Set(0, 0, Black))
	require.NoError(t, b.Set(14, 14, White))
	require.Equal(t, 1, b.Count(Black))

	b.Reset()
	assert.Equal(t, 15*15, b.Count(Empty))
}

func TestCellOpponent(t *testing.T) {
	assert.Equal(t, White, Black.Opponent())
	assert.Equal(t, Black, White.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
	assert.Equal(t, "Black", Black.String())
	assert.Equal(t, "White", White.String())
}
