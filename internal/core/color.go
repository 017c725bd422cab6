package core

// Color is a logical foreground colour for a screen glyph.
// The TUI layer maps each value to a terminal style.
type Color uint8

// Logical colours used by the board renderer.
const (
	ColorDefault Color = iota
	ColorGrid
	ColorLabel
	ColorBlack
	ColorWhite
	ColorCursor
	ColorLastMove
	ColorWinLine
	ColorStatus
	ColorAlert
)
