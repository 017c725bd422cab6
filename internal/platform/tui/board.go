package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-gomoku/internal/config"
	"github.com/vovakirdan/tui-gomoku/internal/core"
	"github.com/vovakirdan/tui-gomoku/internal/gomoku"
)

// Vertical layout: title, column labels, board rows, blank, status.
// The key help line is appended below the screen by the model.
const (
	titleRow     = 0
	boardTopPad  = 2 // rows above intersection (0,0)
	footerRows   = 2 // blank + status
	rowLabelCols = 3 // "15 "
)

// Layout places the board on the screen. Intersection (x, y) is drawn at
// screen column OriginX + x*CellWidth and row OriginY + y.
type Layout struct {
	Size      int
	CellWidth int
	OriginX   int
	OriginY   int
	Labels    bool
}

// NewLayout centers a board of the given size horizontally on a screen.
func NewLayout(size, cellWidth int, labels bool, screenW int) Layout {
	cellWidth = core.Max(cellWidth, 1)
	l := Layout{Size: size, CellWidth: cellWidth, Labels: labels, OriginY: boardTopPad}

	total := l.boardWidth()
	if labels {
		total += rowLabelCols
	}
	left := core.Max((screenW-total)/2, 0)
	if labels {
		left += rowLabelCols
	}
	l.OriginX = left
	return l
}

func (l Layout) boardWidth() int {
	return (l.Size-1)*l.CellWidth + 1
}

// Bounds is the screen rectangle covered by the intersections.
func (l Layout) Bounds() core.Rect {
	return core.NewRect(l.OriginX, l.OriginY, l.boardWidth(), l.Size)
}

// MinWidth and MinHeight are the smallest screen that fits the board and footer.
func (l Layout) MinWidth() int {
	w := l.boardWidth() + 2
	if l.Labels {
		w += rowLabelCols
	}
	return w
}

func (l Layout) MinHeight() int {
	return boardTopPad + l.Size + footerRows
}

// ScreenPos returns the screen cell of intersection (x, y).
func (l Layout) ScreenPos(x, y int) (int, int) {
	return l.OriginX + x*l.CellWidth, l.OriginY + y
}

// CellAt maps a screen cell (e.g. a mouse click) to board coordinates.
// The result may be off the board; the engine rejects it.
func (l Layout) CellAt(sx, sy int) (int, int) {
	return gomoku.PointerToCell(
		float64(sx), float64(sy),
		float64(l.OriginX), float64(l.OriginY),
		float64(l.CellWidth), 1,
	)
}

// ColumnLabel returns the letter naming column x (A, B, ...).
func ColumnLabel(x int) string {
	return string(rune('A' + x))
}

// PointLabel formats a board point as column letter plus 1-based row, e.g. "H8".
func PointLabel(p gomoku.Point) string {
	return ColumnLabel(p.X) + strconv.Itoa(p.Y+1)
}

// intersection picks the grid glyph for (x, y) of an n-sized board.
func intersection(x, y, n int) rune {
	last := n - 1
	switch {
	case x == 0 && y == 0:
		return '┌'
	case x == last && y == 0:
		return '┐'
	case x == 0 && y == last:
		return '└'
	case x == last && y == last:
		return '┘'
	case y == 0:
		return '┬'
	case y == last:
		return '┴'
	case x == 0:
		return '├'
	case x == last:
		return '┤'
	default:
		return '┼'
	}
}

// BoardView draws an engine snapshot with a cursor and status line.
type BoardView struct {
	Layout  Layout
	Display config.DisplayConfig
	Title   string
}

// Draw renders the snapshot into dst. dst is cleared first.
func (v BoardView) Draw(dst *core.Screen, snap gomoku.Snapshot, cursor gomoku.Point, status string, statusColor core.Color) {
	dst.Clear()
	l := v.Layout

	if dst.Width() < l.MinWidth() || dst.Height() < l.MinHeight() {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorAlert)
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("need %dx%d", l.MinWidth(), l.MinHeight()), core.ColorStatus)
		return
	}

	dst.DrawTextCentered(titleRow, v.Title, core.ColorStatus)

	if l.Labels {
		for x := range l.Size {
			sx, _ := l.ScreenPos(x, 0)
			dst.DrawTextColored(sx, l.OriginY-1, ColumnLabel(x), core.ColorLabel)
		}
		for y := range l.Size {
			_, sy := l.ScreenPos(0, y)
			dst.DrawTextColored(l.OriginX-rowLabelCols, sy, fmt.Sprintf("%2d", y+1), core.ColorLabel)
		}
	}

	for y := range l.Size {
		for x := range l.Size {
			sx, sy := l.ScreenPos(x, y)
			if x < l.Size-1 {
				for i := 1; i < l.CellWidth; i++ {
					dst.SetColored(sx+i, sy, '─', core.ColorGrid)
				}
			}

			switch snap.Cells[y][x] {
			case gomoku.Black:
				dst.SetColored(sx, sy, v.Display.BlackRune(), v.stoneColor(snap, x, y, core.ColorBlack))
			case gomoku.White:
				dst.SetColored(sx, sy, v.Display.WhiteRune(), v.stoneColor(snap, x, y, core.ColorWhite))
			default:
				dst.SetColored(sx, sy, intersection(x, y, l.Size), core.ColorGrid)
			}
		}
	}

	if !snap.Outcome.Over() && l.CellWidth > 1 {
		sx, sy := l.ScreenPos(cursor.X, cursor.Y)
		dst.SetColored(sx-1, sy, '[', core.ColorCursor)
		dst.SetColored(sx+1, sy, ']', core.ColorCursor)
		if snap.Cells[cursor.Y][cursor.X] == gomoku.Empty {
			dst.SetColored(sx, sy, '·', core.ColorCursor)
		}
	}

	if snap.Outcome.Over() {
		v.drawWinPrompt(dst, snap.Outcome.Winner)
	}

	statusY := l.OriginY + l.Size + 1
	dst.DrawTextCentered(statusY, status, statusColor)
}

// drawWinPrompt overlays a boxed "<Colour> Won!" prompt on the board center.
func (v BoardView) drawWinPrompt(dst *core.Screen, winner gomoku.Cell) {
	const w, h = 18, 4
	b := v.Layout.Bounds()
	box := core.NewRect(b.X+(b.W-w)/2, b.Y+(b.H-h)/2, w, h)

	blankRow := strings.Repeat(" ", w)
	for y := box.Y; y < box.Bottom(); y++ {
		dst.DrawText(box.X, y, blankRow)
	}
	dst.DrawBox(box, core.ColorAlert)

	title := winner.String() + " Won!"
	dst.DrawTextColored(box.X+(w-len(title))/2, box.Y+1, title, core.ColorAlert)
	hint := "r: restart"
	dst.DrawTextColored(box.X+(w-len(hint))/2, box.Y+2, hint, core.ColorStatus)
}

func (v BoardView) stoneColor(snap gomoku.Snapshot, x, y int, base core.Color) core.Color {
	switch {
	case snap.OnLine(x, y):
		return core.ColorWinLine
	case snap.HasLastMove && snap.LastMove.X == x && snap.LastMove.Y == y:
		return core.ColorLastMove
	default:
		return base
	}
}
