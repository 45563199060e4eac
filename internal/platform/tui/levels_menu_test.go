package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	mtcore "github.com/vovakirdan/tui-mousetrap/internal/games/mousetrap/core"
)

func updateMenu(m LevelMenuModel, msg tea.Msg) LevelMenuModel {
	next, _ := m.Update(msg)
	return next.(LevelMenuModel)
}

func TestLevelMenuStartsAfterHighestCompleted(t *testing.T) {
	catalog := mtcore.DefaultCatalog()

	tests := []struct {
		completed []int
		expected  int
	}{
		{nil, 0},
		{[]int{0}, 1},
		{[]int{0, 1}, 2},
		{[]int{0, 1, 2}, 2},
	}
	for _, tc := range tests {
		m := NewLevelMenuModel(catalog, mtcore.SaveRecord{LevelsCompleted: tc.completed}, DefaultMenuTheme(), 80, 24)
		if m.cursor != tc.expected {
			t.Errorf("completed %v: cursor = %d, expected %d", tc.completed, m.cursor, tc.expected)
		}
	}
}

func TestLevelMenuNavigation(t *testing.T) {
	m := NewLevelMenuModel(mtcore.DefaultCatalog(), mtcore.SaveRecord{}, DefaultMenuTheme(), 80, 24)

	m = updateMenu(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top, expected 0", m.cursor)
	}
	for range 5 {
		m = updateMenu(m, runeKey('j'))
	}
	if m.cursor != 2 {
		t.Errorf("cursor = %d after moving past the end, expected 2", m.cursor)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(LevelMenuModel)
	if m.Selected() != 3 || cmd == nil {
		t.Errorf("Selected() = %d, expected 3", m.Selected())
	}
}

func TestLevelMenuProgressAndQuit(t *testing.T) {
	m := NewLevelMenuModel(mtcore.DefaultCatalog(), mtcore.SaveRecord{}, DefaultMenuTheme(), 80, 24)

	if p := updateMenu(m, tea.KeyMsg{Type: tea.KeyTab}); !p.WantsProgress() {
		t.Error("tab should open the progress screen")
	}
	if q := updateMenu(m, runeKey('q')); !q.IsQuitting() || q.View() != "" {
		t.Error("q should quit with an empty view")
	}
}

func TestLevelMenuView(t *testing.T) {
	m := NewLevelMenuModel(mtcore.DefaultCatalog(), mtcore.SaveRecord{LevelsCompleted: []int{0}}, MonochromeMenuTheme(), 100, 30)
	m.SetNotice("could not start level")
	view := m.View()

	for _, want := range []string{"M O U S E T R A P", "1/3 cleared", "✓", "Level 3", "blunder 20%", "could not start level"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lacks %q", want)
		}
	}
	if strings.Count(view, "✓") != 1 {
		t.Errorf("expected one completion mark, got %d", strings.Count(view, "✓"))
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"ab", 6, "  ab"},
		{"abc", 3, "abc"},
		{"toolong", 4, "toolong"},
	}
	for _, tc := range tests {
		if got := centerText(tc.text, tc.width); got != tc.expected {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tc.text, tc.width, got, tc.expected)
		}
	}
}
