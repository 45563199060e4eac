package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mousetrap/internal/core"
	mtcore "github.com/vovakirdan/tui-mousetrap/internal/games/mousetrap/core"
)

type memStore struct {
	record mtcore.SaveRecord
	saves  int
}

func (m *memStore) Save(r mtcore.SaveRecord) error {
	m.saves++
	m.record = r.Clone()
	return nil
}

func (m *memStore) Load() (mtcore.SaveRecord, error) {
	return m.record.Clone(), nil
}

func testAppConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW = 100
	cfg.ScreenH = 40
	cfg.Seed = 7
	return cfg
}

func updateApp(m AppModel, msgs ...tea.Msg) AppModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(AppModel)
	}
	return m
}

func TestAppModelPlayAndReturn(t *testing.T) {
	store := &memStore{}
	m := NewAppModel(AppOptions{Store: store}, testAppConfig())
	if m.screen != screenLevels {
		t.Fatalf("app starts on screen %d, expected the level selector", m.screen)
	}

	m = updateApp(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.game == nil {
		t.Fatal("enter should start a game")
	}

	m = updateApp(m, tea.KeyMsg{Type: tea.KeyEsc}, TickMsg{})
	if m.screen != screenLevels || m.game != nil {
		t.Fatal("esc should return to the level selector")
	}
	if store.saves != 1 {
		t.Errorf("leaving a game saved %d times, expected 1", store.saves)
	}

	m = updateApp(m, runeKey('q'))
	if !m.quitting || m.View() != "" {
		t.Error("q in the selector should quit")
	}
}

func TestAppModelProgressScreen(t *testing.T) {
	m := NewAppModel(AppOptions{}, testAppConfig())

	m = updateApp(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenProgress {
		t.Fatal("tab should open the progress screen")
	}

	m = updateApp(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenLevels {
		t.Error("esc should return to the level selector")
	}
}

func TestAppModelStartLevel(t *testing.T) {
	m := NewAppModel(AppOptions{StartLevel: 2}, testAppConfig())
	if m.screen != screenGame {
		t.Fatal("StartLevel should skip the selector")
	}
	if lvl := m.game.gameState.Level; lvl != 2 {
		t.Errorf("game started at level %d, expected 2", lvl)
	}
	if m.Init() == nil {
		t.Error("Init() should start the tick loop")
	}

	bad := NewAppModel(AppOptions{StartLevel: 9}, testAppConfig())
	if bad.screen != screenLevels || bad.levels.notice == "" {
		t.Error("an unknown start level should fall back to the selector with a notice")
	}
}

func TestAppModelQuitFromGame(t *testing.T) {
	store := &memStore{record: mtcore.SaveRecord{LevelsCompleted: []int{0}}}
	m := NewAppModel(AppOptions{Store: store}, testAppConfig())
	if m.levels.cursor != 1 {
		t.Errorf("selector cursor = %d, expected the level after the completed one", m.levels.cursor)
	}

	m = updateApp(m, tea.KeyMsg{Type: tea.KeyEnter}, runeKey('q'), TickMsg{})
	if !m.quitting {
		t.Error("q in a game should quit the app")
	}
	if len(store.record.LevelsCompleted) != 1 {
		t.Errorf("quit changed the record: %v", store.record.LevelsCompleted)
	}
}
