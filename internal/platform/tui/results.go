package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-gomoku/internal/logging"
	"github.com/vovakirdan/tui-gomoku/internal/registry"
	"github.com/vovakirdan/tui-gomoku/internal/storage"
)

// Results screen layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show variant list sidebar
	sidebarWidth       = 24  // Width of variant list sidebar
	maxResults         = 100 // Max results to load
)

// ResultsKeyMap defines the key bindings for the results screen.
type ResultsKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextVariant key.Binding
	PrevVariant key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextVariant, k.PrevVariant, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextVariant, k.PrevVariant},
		{k.Back, k.Quit},
	}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextVariant: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next board"),
		),
		PrevVariant: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev board"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel is the Bubble Tea model for the results ledger screen.
type ResultsModel struct {
	variants      []registry.Variant
	variantCursor int
	store         *storage.Store
	logger        *log.Logger
	theme         Theme
	results       []storage.Result
	tally         *storage.Tally
	table         table.Model
	help          help.Model
	keys          ResultsKeyMap
	width         int
	height        int
	quitting      bool
	goingBack     bool
	showSidebar   bool
}

// NewResultsModel creates a results screen focused on the given variant.
// Custom board sizes with rows in the store are listed next to the
// registered variants. An unknown variant falls back to the first one.
func NewResultsModel(store *storage.Store, theme Theme, logger *log.Logger, variant string, width, height int) ResultsModel {
	if logger == nil {
		logger = logging.Discard()
	}

	ids := []string{variant}
	if store != nil {
		stored, err := store.Variants()
		if err != nil {
			logger.Warn("could not list result variants", "error", err)
		}
		ids = append(ids, stored...)
	}
	variants := registry.ListWith(ids...)

	m := ResultsModel{
		variants:    variants,
		store:       store,
		logger:      logger,
		theme:       theme.orDefault(),
		keys:        DefaultResultsKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, v := range variants {
		if v.ID == variant {
			m.variantCursor = i
		}
	}

	m.table = m.createTable()
	if len(m.variants) > 0 {
		m.loadResults(m.variants[m.variantCursor].ID)
	}

	return m
}

// createTable creates a new table sized to the current window.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Winner", Width: 7},
		{Title: "Moves", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Title, tally, help and borders
	)

	r := m.theme.Renderer()
	s := table.DefaultStyles()
	s.Header = r.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = r.NewStyle().
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)

	return t
}

// loadResults loads the ledger rows and tally for a variant.
func (m *ResultsModel) loadResults(variant string) {
	m.results = nil
	m.tally = nil

	if m.store != nil {
		results, err := m.store.RecentResults(variant, maxResults)
		if err != nil {
			m.logger.Warn("could not load results", "variant", variant, "error", err)
		}
		m.results = results

		tally, err := m.store.Tally(variant)
		if err != nil {
			m.logger.Warn("could not load tally", "variant", variant, "error", err)
		}
		m.tally = tally
	}

	m.updateTableRows()
}

// updateTableRows updates the table with current results.
func (m *ResultsModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			r.Winner,
			fmt.Sprintf("%d", r.Moves),
			r.Duration.String(),
			player,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results screen.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextVariant):
			if len(m.variants) > 0 {
				m.variantCursor = (m.variantCursor + 1) % len(m.variants)
				m.loadResults(m.variants[m.variantCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevVariant):
			if len(m.variants) > 0 {
				m.variantCursor = (m.variantCursor - 1 + len(m.variants)) % len(m.variants)
				m.loadResults(m.variants[m.variantCursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results screen.
func (m ResultsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "RESULTS"
	if v, ok := m.Current(); ok {
		title = fmt.Sprintf("RESULTS - %s", v.Title)
	}
	b.WriteString(m.theme.title.Render(centerText(title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tallyLine(), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderTable())
	}

	b.WriteString("\n")
	b.WriteString(m.theme.dim.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ResultsModel) tallyLine() string {
	if m.tally == nil || m.tally.Games == 0 {
		return "No games finished yet"
	}
	return fmt.Sprintf("Games %d   Black %d   White %d   Avg %.1f moves",
		m.tally.Games, m.tally.BlackWins, m.tally.WhiteWins, m.tally.AvgMoves)
}

// renderWideLayout renders the table with a sidebar listing the variants.
func (m ResultsModel) renderWideLayout() string {
	r := m.theme.Renderer()
	sidebarStyle := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Boards\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, v := range m.variants {
		cursor := "  "
		style := r.NewStyle()
		if i == m.variantCursor {
			cursor = "> "
			style = m.theme.title
		}
		sidebar.WriteString(style.Render(fmt.Sprintf("%s%s (%d)", cursor, v.ID, v.Size)))
		sidebar.WriteString("\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarStyle.Render(sidebar.String()), "  ", m.renderTable())
}

// renderTable renders the table or an empty message inside a border.
func (m ResultsModel) renderTable() string {
	style := m.theme.Renderer().NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.results) == 0 {
		return style.Render(m.theme.dim.Render("No results recorded yet.\nFinish a game to fill the ledger!"))
	}
	return style.Render(m.table.View())
}

// Current returns the variant whose results are shown.
func (m ResultsModel) Current() (registry.Variant, bool) {
	if len(m.variants) == 0 {
		return registry.Variant{}, false
	}
	return m.variants[m.variantCursor], true
}

// Results returns the rows currently loaded.
func (m ResultsModel) Results() []storage.Result {
	return m.results
}

// IsGoingBack returns true if user wants to leave the results screen.
func (m ResultsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ResultsModel) IsQuitting() bool {
	return m.quitting
}
