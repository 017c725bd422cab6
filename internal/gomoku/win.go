package gomoku

// WinLength is the minimum run of same-coloured stones that wins.
const WinLength = 5

// Point is a board coordinate.
type Point struct {
	X, Y int
}

// axes are the four line directions checked through a placed stone:
// horizontal, vertical, diagonal and anti-diagonal.
var axes = [4]Point{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// walk counts consecutive cells equal to c starting one step from (x, y)
// in direction (dx, dy). It stops at the first mismatch or the board edge.
func (b *Board) walk(x, y, dx, dy int, c Cell) int {
	n := 0
	for {
		x += dx
		y += dy
		if !b.InBounds(x, y) || b.at(x, y) != c {
			return n
		}
		n++
	}
}

// IsWin reports whether the stone at (x, y) is part of a run of at least
// WinLength stones of its colour along any single axis.
func (b *Board) IsWin(x, y int) bool {
	return len(b.WinningLine(x, y)) > 0
}

// WinningLine returns the full run through (x, y) on the first axis that
// reaches WinLength, ordered from the negative end to the positive end.
// It returns nil when there is no such run or the cell is empty.
func (b *Board) WinningLine(x, y int) []Point {
	if !b.InBounds(x, y) {
		return nil
	}
	c := b.at(x, y)
	if c == Empty {
		return nil
	}

	for _, d := range axes {
		back := b.walk(x, y, -d.X, -d.Y, c)
		fwd := b.walk(x, y, d.X, d.Y, c)
		count := 1 + back + fwd
		if count < WinLength {
			continue
		}

		line := make([]Point, 0, count)
		sx, sy := x-back*d.X, y-back*d.Y
		for i := 0; i < count; i++ {
			line = append(line, Point{X: sx + i*d.X, Y: sy + i*d.Y})
		}
		return line
	}
	return nil
}
