package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-gomoku/internal/core"
)

// Theme maps logical colours to lipgloss styles for one renderer.
// SSH sessions get their own renderer so colour detection follows the
// client terminal, not the server's.
type Theme struct {
	renderer *lipgloss.Renderer
	styles   map[core.Color]lipgloss.Style
	title    lipgloss.Style
	dim      lipgloss.Style
}

// NewTheme builds the board palette on the given renderer.
// With noColor the renderer is forced to the ASCII profile.
func NewTheme(r *lipgloss.Renderer, noColor bool) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return Theme{
		renderer: r,
		styles: map[core.Color]lipgloss.Style{
			core.ColorDefault:  r.NewStyle(),
			core.ColorGrid:     r.NewStyle().Foreground(lipgloss.Color("242")),
			core.ColorLabel:    r.NewStyle().Foreground(lipgloss.Color("245")),
			core.ColorBlack:    r.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
			core.ColorWhite:    r.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
			core.ColorCursor:   r.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
			core.ColorLastMove: r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
			core.ColorWinLine:  r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true).Underline(true),
			core.ColorStatus:   r.NewStyle().Foreground(lipgloss.Color("252")),
			core.ColorAlert:    r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		},
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		dim:   r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// orDefault returns t, or a colour theme on the default renderer when t is
// the zero value.
func (t Theme) orDefault() Theme {
	if t.renderer == nil {
		return NewTheme(nil, false)
	}
	return t
}

// Renderer returns the lipgloss renderer the theme was built on.
func (t Theme) Renderer() *lipgloss.Renderer {
	return t.renderer
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (t Theme) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := t.styles[startColor]
			if !ok {
				style = t.styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
