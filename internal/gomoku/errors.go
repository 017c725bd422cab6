package gomoku

import "errors"

// Rejection reasons returned by ApplyMove. None of them modify state.
var (
	ErrOutOfBounds  = errors.New("gomoku: coordinates out of bounds")
	ErrCellOccupied = errors.New("gomoku: cell already occupied")
	ErrGameOver     = errors.New("gomoku: game is over")
)
