package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mtcore "github.com/vovakirdan/tui-mousetrap/internal/games/mousetrap/core"
)

// LevelMenuModel is the level picker shown before each game.
type LevelMenuModel struct {
	catalog      *mtcore.Catalog
	record       mtcore.SaveRecord
	cursor       int
	width        int
	height       int
	scrollOffset int
	keyMapper    *KeyMapper
	theme        MenuTheme
	notice       string
	selected     int // 1-based level, 0 while choosing
	progress     bool
	quitting     bool
}

// NewLevelMenuModel creates a level picker. The cursor starts on the first
// level after the highest one already completed.
func NewLevelMenuModel(catalog *mtcore.Catalog, record mtcore.SaveRecord, theme MenuTheme, width, height int) LevelMenuModel {
	cursor := min(record.HighestCompleted(), catalog.Len()-1)
	m := LevelMenuModel{
		catalog:   catalog,
		record:    record,
		cursor:    max(cursor, 0),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		theme:     theme,
	}
	m.updateScroll()
	return m
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < m.catalog.Len()-1 {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		m.selected = m.cursor + 1
		return m, tea.Quit
	case MenuActionProgress:
		m.progress = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *LevelMenuModel) visibleItems() int {
	return max(m.height-10, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *LevelMenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the level list.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("M O U S E T R A P"), m.width))
	b.WriteString("\n\n")

	done := 0
	for _, lvl := range m.catalog.Levels() {
		if m.record.Completed(lvl.Index) {
			done++
		}
	}
	subtitle := fmt.Sprintf("Trap the mouse before it reaches the edge.  %d/%d cleared", done, m.catalog.Len())
	b.WriteString(centerText(m.theme.Description.Render(subtitle), m.width))
	b.WriteString("\n\n")

	levels := m.catalog.Levels()
	end := min(m.scrollOffset+m.visibleItems(), len(levels))
	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.Description.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	for i := m.scrollOffset; i < end; i++ {
		b.WriteString(centerText(m.renderLevel(i, levels[i]), m.width))
		b.WriteString("\n")
	}
	if end < len(levels) {
		b.WriteString(centerText(m.theme.Description.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(centerText(m.theme.Warning.Render(m.notice), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := m.theme.Controls.Render("Up/Down: Navigate  |  Enter: Play  |  Tab: Progress  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

func (m LevelMenuModel) renderLevel(i int, lvl mtcore.Level) string {
	cursor := "  "
	style := m.theme.ItemNormal
	if i == m.cursor {
		cursor = "> "
		style = m.theme.ItemActive
	}

	mark := "  "
	if m.record.Completed(lvl.Index) {
		mark = m.theme.ItemDone.Render("✓ ")
	}

	line := fmt.Sprintf("%sLevel %d   radius %d   %3d blocked   blunder %2d%%",
		cursor, lvl.Index, lvl.MapRadius, lvl.NumAlreadyRevealed, lvl.MouseBlunderPercentage)
	return mark + style.Render(line)
}

// SetNotice shows a one-line warning under the level list.
func (m *LevelMenuModel) SetNotice(notice string) {
	m.notice = notice
}

// Selected returns the chosen 1-based level, or 0 if none was chosen.
func (m LevelMenuModel) Selected() int {
	return m.selected
}

// WantsProgress returns true if user asked for the progress screen.
func (m LevelMenuModel) WantsProgress() bool {
	return m.progress
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
