package gomoku

import "math"

// PointerToCell maps a pointer position to grid coordinates with the linear
// transform the host uses for clicks: subtract the board origin, divide by
// the cell pitch and round to the nearest intersection.
// The result is not clamped; ApplyMove rejects anything off the board.
func PointerToCell(px, py, originX, originY, pitchX, pitchY float64) (int, int) {
	if pitchX <= 0 || pitchY <= 0 {
		return -1, -1
	}
	x := math.Round((px - originX) / pitchX)
	y := math.Round((py - originY) / pitchY)
	return int(x), int(y)
}
