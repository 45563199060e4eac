package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	mtcore "github.com/vovakirdan/tui-mousetrap/internal/games/mousetrap/core"
	"github.com/vovakirdan/tui-mousetrap/internal/storage"
)

type fakeHistory struct {
	stats   []storage.LevelStats
	results []storage.ResultEntry
	err     error
}

func (f *fakeHistory) LevelStats() ([]storage.LevelStats, error) {
	return f.stats, f.err
}

func (f *fakeHistory) RecentResults(limit int) ([]storage.ResultEntry, error) {
	return f.results, f.err
}

func updateProgress(m ProgressModel, msg tea.Msg) ProgressModel {
	next, _ := m.Update(msg)
	return next.(ProgressModel)
}

func TestProgressModelViews(t *testing.T) {
	played := time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)
	history := &fakeHistory{
		stats: []storage.LevelStats{
			{Level: 1, Plays: 3, Wins: 2, BestTurns: 7, LastPlayed: played},
			{Level: 2, Plays: 1, Wins: 0, LastPlayed: played},
		},
		results: []storage.ResultEntry{
			{Level: 2, Outcome: mtcore.OutcomeMouseWon, Turns: 4, CreatedAt: played},
		},
	}
	record := mtcore.SaveRecord{LevelsCompleted: []int{0, 0}}
	m := NewProgressModel(mtcore.DefaultCatalog(), record, history, 100, 30)

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("level view has %d rows, expected 2", len(rows))
	}
	if rows[0][3] != "7" || rows[1][3] != "-" {
		t.Errorf("best turns column = %q, %q", rows[0][3], rows[1][3])
	}

	view := m.View()
	for _, want := range []string{"PROGRESS - Per level", "✓ Level 1", "Wins saved: 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lacks %q", want)
		}
	}

	m = updateProgress(m, tea.KeyMsg{Type: tea.KeyTab})
	rows = m.table.Rows()
	if len(rows) != 1 || rows[0][1] != "escaped" {
		t.Errorf("recent view rows = %v", rows)
	}
	if !strings.Contains(m.View(), "Recent games") {
		t.Error("recent view title missing")
	}
}

func TestProgressModelEmptyStates(t *testing.T) {
	tests := []struct {
		name   string
		source ProgressSource
		want   string
	}{
		{"no database", nil, "No history database"},
		{"no games", &fakeHistory{}, "No games recorded yet"},
		{"load error", &fakeHistory{err: errors.New("locked")}, "locked"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewProgressModel(mtcore.DefaultCatalog(), mtcore.SaveRecord{}, tc.source, 60, 24)
			view := m.View()
			if !strings.Contains(view, tc.want) {
				t.Errorf("view lacks %q", tc.want)
			}
			if !strings.Contains(view, "0/3 levels cleared") {
				t.Error("narrow layout should show the summary line")
			}
		})
	}
}

func TestProgressModelNavigation(t *testing.T) {
	m := NewProgressModel(mtcore.DefaultCatalog(), mtcore.SaveRecord{}, nil, 80, 24)

	if back := updateProgress(m, tea.KeyMsg{Type: tea.KeyEsc}); !back.IsGoingBack() || back.IsQuitting() {
		t.Error("esc should go back")
	}
	if quit := updateProgress(m, runeKey('q')); !quit.IsQuitting() {
		t.Error("q should quit")
	}
}
