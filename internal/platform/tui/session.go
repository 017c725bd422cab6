package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-gomoku/internal/logging"
	"github.com/vovakirdan/tui-gomoku/internal/registry"
)

type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenResults
)

// SessionModel manages the full session flow: menu -> board -> results.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	opts     GameOptions
	active   screenKind
	menu     MenuModel
	game     *GameModel // Kept while the results screen is open
	results  ResultsModel
	quitting bool
}

// NewSessionModel creates a session that opens on the variant picker.
func NewSessionModel(opts GameOptions) SessionModel {
	opts.Theme = opts.Theme.orDefault()
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return SessionModel{
		opts:   opts,
		active: screenMenu,
		menu:   NewMenuModel(opts.Theme, opts.Width, opts.Height).focus(opts.Board.Variant),
	}
}

// NewSessionModelWithGame creates a session that opens straight on a board.
func NewSessionModelWithGame(v registry.Variant, opts GameOptions) SessionModel {
	m := NewSessionModel(opts)
	m.startGame(v)
	return m
}

// startGame opens a board for v, resized when the configuration sets board.size.
func (m *SessionModel) startGame(v registry.Variant) {
	v = v.WithSize(m.opts.Board.Size)
	game := NewGameModel(v, m.opts)
	m.game = &game
	m.active = screenGame
	m.opts.Logger.Info("game started", "variant", v.ID, "size", v.Size, "player", m.opts.Player)
}

func (m *SessionModel) openMenu() {
	m.menu = NewMenuModel(m.opts.Theme, m.opts.Width, m.opts.Height).focus(m.opts.Board.Variant)
	m.game = nil
	m.active = screenMenu
}

func (m *SessionModel) openResults(variant string) {
	m.results = NewResultsModel(m.opts.Store, m.opts.Theme, m.opts.Logger, variant, m.opts.Width, m.opts.Height)
	m.active = screenResults
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
		// The board is resized even when hidden behind the results screen.
		if m.game != nil && m.active != screenGame {
			updated, _ := m.game.Update(msg)
			if g, ok := updated.(GameModel); ok {
				m.game = &g
			}
		}
	}

	switch m.active {
	case screenGame:
		return m.updateGame(msg)
	case screenResults:
		return m.updateResults(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.menu.Update(msg)
	if menu, ok := updated.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.menu.WantsResults():
		m.openResults(m.menu.Current().ID)
		return m, nil
	case m.menu.Selected() != nil:
		m.startGame(*m.menu.Selected())
		return m, nil
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.game.Update(msg)
	if game, ok := updated.(GameModel); ok {
		m.game = &game
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		m.opts.Logger.Info("game left", "variant", m.game.Variant().ID, "moves", m.game.Engine().Moves())
		m.openMenu()
		return m, nil
	case m.game.WantsResults():
		m.game.wantsResults = false
		m.openResults(m.game.Variant().ID)
		return m, nil
	}

	return m, cmd
}

func (m SessionModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.results.Update(msg)
	if results, ok := updated.(ResultsModel); ok {
		m.results = results
	}

	switch {
	case m.results.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.results.IsGoingBack():
		if m.game != nil {
			m.active = screenGame
		} else {
			m.openMenu()
		}
		return m, nil
	}

	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.active {
	case screenGame:
		return m.game.View()
	case screenResults:
		return m.results.View()
	default:
		return m.menu.View()
	}
}

// Game returns the active board screen, or nil outside a game.
func (m SessionModel) Game() *GameModel {
	if m.active != screenGame {
		return nil
	}
	return m.game
}

// Run starts a local session. With a nil variant the session opens on the menu.
func Run(v *registry.Variant, opts GameOptions) error {
	var model SessionModel
	if v != nil {
		model = NewSessionModelWithGame(*v, opts)
	} else {
		model = NewSessionModel(opts)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
