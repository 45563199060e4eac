package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mtcore "github.com/vovakirdan/tui-mousetrap/internal/games/mousetrap/core"
	"github.com/vovakirdan/tui-mousetrap/internal/storage"
)

// Progress screen layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the summary sidebar
	sidebarWidth       = 22 // Width of the summary sidebar
	maxResults         = 50 // Max recent results to load
)

// ProgressSource provides the history shown on the progress screen.
// *storage.SlotStore implements it.
type ProgressSource interface {
	LevelStats() ([]storage.LevelStats, error)
	RecentResults(limit int) ([]storage.ResultEntry, error)
}

// progressView selects the table shown on the progress screen.
type progressView int

const (
	viewLevels progressView = iota
	viewRecent
)

func (v progressView) title() string {
	if v == viewRecent {
		return "Recent games"
	}
	return "Per level"
}

// ProgressKeyMap defines the key bindings for the progress screen.
type ProgressKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	SwitchView key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ProgressKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.SwitchView, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ProgressKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.SwitchView},
		{k.Back, k.Quit},
	}
}

// DefaultProgressKeyMap returns default key bindings.
func DefaultProgressKeyMap() ProgressKeyMap {
	return ProgressKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		SwitchView: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "switch view"),
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

// ProgressModel shows completed levels, per-level stats and recent games.
type ProgressModel struct {
	catalog     *mtcore.Catalog
	record      mtcore.SaveRecord
	source      ProgressSource
	view        progressView
	stats       []storage.LevelStats
	results     []storage.ResultEntry
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ProgressKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewProgressModel creates a progress screen. source may be nil when no
// result history is available.
func NewProgressModel(catalog *mtcore.Catalog, record mtcore.SaveRecord, source ProgressSource, width, height int) ProgressModel {
	h := help.New()
	h.ShowAll = false

	m := ProgressModel{
		catalog:     catalog,
		record:      record,
		source:      source,
		keys:        DefaultProgressKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// load reads stats and results from the source.
func (m *ProgressModel) load() {
	m.stats, m.results, m.loadErr = nil, nil, nil
	if m.source == nil {
		return
	}

	stats, err := m.source.LevelStats()
	if err != nil {
		m.loadErr = err
		return
	}
	results, err := m.source.RecentResults(maxResults)
	if err != nil {
		m.loadErr = err
		return
	}
	m.stats, m.results = stats, results
}

// columns returns the table columns for the current view.
func (m *ProgressModel) columns() []table.Column {
	if m.view == viewRecent {
		return []table.Column{
			{Title: "Level", Width: 6},
			{Title: "Outcome", Width: 12},
			{Title: "Turns", Width: 6},
			{Title: "Date", Width: 14},
		}
	}
	return []table.Column{
		{Title: "Level", Width: 6},
		{Title: "Plays", Width: 6},
		{Title: "Wins", Width: 6},
		{Title: "Best", Width: 6},
		{Title: "Last played", Width: 14},
	}
}

// createTable creates a new table with the columns of the current view.
func (m *ProgressModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// rowCount returns the number of rows of the current view.
func (m *ProgressModel) rowCount() int {
	if m.view == viewRecent {
		return len(m.results)
	}
	return len(m.stats)
}

// updateTableRows fills the table from the loaded data.
func (m *ProgressModel) updateTableRows() {
	var rows []table.Row
	if m.view == viewRecent {
		rows = make([]table.Row, len(m.results))
		for i, r := range m.results {
			rows[i] = table.Row{
				fmt.Sprintf("%d", r.Level),
				outcomeLabel(r.Outcome),
				fmt.Sprintf("%d", r.Turns),
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	} else {
		rows = make([]table.Row, len(m.stats))
		for i, s := range m.stats {
			best := "-"
			if s.Wins > 0 {
				best = fmt.Sprintf("%d", s.BestTurns)
			}
			rows[i] = table.Row{
				fmt.Sprintf("%d", s.Level),
				fmt.Sprintf("%d", s.Plays),
				fmt.Sprintf("%d", s.Wins),
				best,
				s.LastPlayed.Format("Jan 02 15:04"),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func outcomeLabel(o mtcore.Outcome) string {
	switch o {
	case mtcore.OutcomePlayerWon:
		return "trapped"
	case mtcore.OutcomeMouseWon:
		return "escaped"
	default:
		return string(o)
	}
}

// Init initializes the progress model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the progress screen.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.SwitchView):
			if m.view == viewLevels {
				m.view = viewRecent
			} else {
				m.view = viewLevels
			}
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
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

// View renders the progress screen.
func (m ProgressModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("PROGRESS - %s", m.view.title())
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := boxStyle.Render(m.renderTableContent())

	if m.showSidebar {
		sidebar := boxStyle.Width(sidebarWidth).Render(m.renderSummary())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", tableRendered))
	} else {
		b.WriteString(centerText(m.summaryLine(), m.width))
		b.WriteString("\n\n")
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSummary lists every level with its completion mark.
func (m ProgressModel) renderSummary() string {
	var sb strings.Builder
	sb.WriteString("Levels\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	for _, lvl := range m.catalog.Levels() {
		if m.record.Completed(lvl.Index) {
			sb.WriteString(doneStyle.Render(fmt.Sprintf("✓ Level %d", lvl.Index)))
		} else {
			sb.WriteString(fmt.Sprintf("  Level %d", lvl.Index))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Wins saved: %d", len(m.record.LevelsCompleted)))
	return sb.String()
}

// summaryLine is the narrow-layout replacement of the sidebar.
func (m ProgressModel) summaryLine() string {
	done := 0
	for _, lvl := range m.catalog.Levels() {
		if m.record.Completed(lvl.Index) {
			done++
		}
	}
	return fmt.Sprintf("%d/%d levels cleared", done, m.catalog.Len())
}

// renderTableContent renders the table or an empty message.
func (m ProgressModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load history:\n" + m.loadErr.Error())
	case m.source == nil:
		return emptyStyle.Render("No history database.\nRun with --db to record games.")
	case m.rowCount() == 0:
		return emptyStyle.Render("No games recorded yet.\nGo trap a mouse!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to the level selector.
func (m ProgressModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ProgressModel) IsQuitting() bool {
	return m.quitting
}
