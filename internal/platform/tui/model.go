package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-gomoku/internal/config"
	"github.com/vovakirdan/tui-gomoku/internal/core"
	"github.com/vovakirdan/tui-gomoku/internal/gomoku"
	"github.com/vovakirdan/tui-gomoku/internal/logging"
	"github.com/vovakirdan/tui-gomoku/internal/registry"
	"github.com/vovakirdan/tui-gomoku/internal/storage"
)

// GameOptions carries the host dependencies shared by every board screen.
type GameOptions struct {
	Board   config.BoardConfig // Variant preselects the menu; a non-zero Size overrides every board
	Display config.DisplayConfig
	Theme   Theme
	Store   *storage.Store // nil disables the results ledger
	Logger  *log.Logger    // nil discards
	Player  string
	Width   int
	Height  int
}

// GameModel is the Bubble Tea model for one hot-seat board.
// It owns a single engine; both colours are played from the same keyboard.
type GameModel struct {
	variant registry.Variant
	engine  *gomoku.Engine
	view    BoardView
	theme   Theme
	screen  *core.Screen
	store   *storage.Store
	logger  *log.Logger
	keys    BoardKeyMap
	help    help.Model
	player  string

	width  int
	height int

	cursor      gomoku.Point
	hint        string // Transient message about the last rejected input
	started     time.Time
	resultSaved bool

	quitting     bool
	backToMenu   bool
	wantsResults bool
}

// NewGameModel creates a board screen for the given variant.
func NewGameModel(v registry.Variant, opts GameOptions) GameModel {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	h := help.New()
	h.ShowAll = false

	m := GameModel{
		variant: v,
		engine:  v.NewEngine(),
		view: BoardView{
			Display: opts.Display,
			Title:   v.Title,
		},
		theme:   opts.Theme.orDefault(),
		screen:  core.NewScreen(0, 0),
		store:   opts.Store,
		logger:  opts.Logger.With("variant", v.ID),
		keys:    DefaultBoardKeyMap(),
		help:    h,
		player:  opts.Player,
		cursor:  gomoku.Point{X: v.Size / 2, Y: v.Size / 2},
		started: time.Now(),
	}
	m.fit(opts.Width, opts.Height)
	return m
}

// Init implements tea.Model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.fit(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// fit resizes the screen buffer and recenters the board. The game is kept.
func (m *GameModel) fit(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	m.view.Layout = NewLayout(m.variant.Size, m.view.Display.CellWidth, m.view.Display.ShowCoords, width)
	m.screen.Resize(width, core.Max(height-m.helpHeight(), 0))
}

// helpHeight is the number of rows the key help takes below the board.
func (m GameModel) helpHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, col := range m.keys.FullHelp() {
		rows = core.Max(rows, len(col))
	}
	return rows
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.fit(m.width, m.height)
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		dx, dy := action.Delta()
		last := m.variant.Size - 1
		m.cursor.X = core.Clamp(m.cursor.X+dx, 0, last)
		m.cursor.Y = core.Clamp(m.cursor.Y+dy, 0, last)
		m.hint = ""

	case core.ActionPlace:
		m.place(m.cursor.X, m.cursor.Y)

	case core.ActionRestart:
		m.restart()

	case core.ActionResults:
		m.wantsResults = true

	case core.ActionBack:
		m.backToMenu = true
	}

	return m, nil
}

// handleMouse places a stone at the intersection nearest a left click.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	x, y := m.view.Layout.CellAt(msg.X, msg.Y)
	if core.NewRect(0, 0, m.variant.Size, m.variant.Size).Contains(x, y) {
		m.cursor = gomoku.Point{X: x, Y: y}
	}
	m.place(x, y)
	return m, nil
}

// place submits a move for the side to play. Rejected moves leave the game
// untouched and only set a hint.
func (m *GameModel) place(x, y int) {
	mover := m.engine.Turn()
	outcome, err := m.engine.ApplyMove(x, y)
	if err != nil {
		m.hint = rejectionHint(err)
		m.logger.Debug("move rejected", "x", x, "y", y, "turn", mover, "error", err)
		return
	}

	m.hint = ""
	m.logger.Debug("move accepted", "x", x, "y", y, "stone", mover, "moves", m.engine.Moves())

	if outcome.Over() {
		m.logger.Info("game won",
			"winner", outcome.Winner,
			"moves", m.engine.Moves(),
			"line", lineLabel(m.engine.WinningLine()),
		)
		m.saveResult(outcome)
	}
}

// saveResult records a finished game in the ledger once.
func (m *GameModel) saveResult(outcome gomoku.Outcome) {
	if m.resultSaved || m.store == nil {
		return
	}
	m.resultSaved = true

	_, err := m.store.SaveResult(storage.Result{
		Variant:   m.variant.ID,
		BoardSize: m.variant.Size,
		Winner:    outcome.Winner.String(),
		Moves:     m.engine.Moves(),
		Duration:  time.Since(m.started),
		Player:    m.player,
	})
	if err != nil {
		m.logger.Warn("could not save result", "error", err)
	}
}

func (m *GameModel) restart() {
	m.engine.Reset()
	m.cursor = gomoku.Point{X: m.variant.Size / 2, Y: m.variant.Size / 2}
	m.hint = ""
	m.started = time.Now()
	m.resultSaved = false
	m.logger.Debug("board reset")
}

func rejectionHint(err error) string {
	switch {
	case errors.Is(err, gomoku.ErrOutOfBounds):
		return "Off the board"
	case errors.Is(err, gomoku.ErrGameOver):
		return "Game over. Press r to restart"
	case errors.Is(err, gomoku.ErrCellOccupied):
		return "That point is taken"
	default:
		return err.Error()
	}
}

func lineLabel(line []gomoku.Point) string {
	if len(line) == 0 {
		return ""
	}
	return PointLabel(line[0]) + "-" + PointLabel(line[len(line)-1])
}

// status returns the line shown under the board and its colour.
func (m GameModel) status(snap gomoku.Snapshot) (string, core.Color) {
	if snap.Outcome.Over() {
		return fmt.Sprintf("%s wins after %d moves (%s)", snap.Outcome.Winner, snap.Moves, lineLabel(snap.WinningLine)),
			core.ColorWinLine
	}
	if m.hint != "" {
		return m.hint, core.ColorAlert
	}

	color := core.ColorBlack
	if snap.Turn == gomoku.White {
		color = core.ColorWhite
	}
	text := fmt.Sprintf("Move %d  %s to play  %s", snap.Moves+1, snap.Turn, PointLabel(m.cursor))
	if m.engine.Full() {
		text = "Board full. Press r to restart"
	}
	return text, color
}

// View renders the board and the key help.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	snap := m.engine.Snapshot()
	text, color := m.status(snap)
	m.view.Draw(m.screen, snap, m.cursor, text, color)

	return m.theme.RenderScreen(m.screen) + "\n" + m.theme.dim.Render(m.help.View(m.keys))
}

// Engine exposes the underlying engine, mainly for tests.
func (m GameModel) Engine() *gomoku.Engine {
	return m.engine
}

// Cursor returns the current cursor position.
func (m GameModel) Cursor() gomoku.Point {
	return m.cursor
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// WantsResults returns true if user asked for the results screen.
func (m GameModel) WantsResults() bool {
	return m.wantsResults
}

// Variant returns the variant being played.
func (m GameModel) Variant() registry.Variant {
	return m.variant
}
