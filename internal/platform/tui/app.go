package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mousetrap/internal/core"
	"github.com/vovakirdan/tui-mousetrap/internal/games/mousetrap"
	mtcore "github.com/vovakirdan/tui-mousetrap/internal/games/mousetrap/core"
)

// AppOptions configures a MouseTrap host session.
type AppOptions struct {
	Catalog    *mtcore.Catalog
	Params     *mtcore.GenParams
	Store      mtcore.ProgressStore
	Results    mtcore.ResultRecorder
	History    ProgressSource
	ShowMouse  bool
	StartLevel int // 1-based; skips the level selector when set
	Theme      *MenuTheme
	Logger     *log.Logger
}

type appScreen int

const (
	screenLevels appScreen = iota
	screenGame
	screenProgress
)

// AppModel manages the full session flow: levels -> game -> levels, with
// the progress screen reachable from the level selector.
// This is the top-level model for local play and SSH sessions.
type AppModel struct {
	opts     AppOptions
	theme    MenuTheme
	config   core.RuntimeConfig
	screen   appScreen
	levels   LevelMenuModel
	game     *GameModel
	progress ProgressModel
	quitting bool
}

// NewAppModel creates the top-level model.
func NewAppModel(opts AppOptions, cfg core.RuntimeConfig) AppModel {
	if opts.Catalog == nil {
		opts.Catalog = mtcore.DefaultCatalog()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	theme := DefaultMenuTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	m := AppModel{
		opts:   opts,
		theme:  theme,
		config: cfg,
	}
	m.levels = m.newLevelMenu()

	if opts.StartLevel > 0 {
		if err := m.startGame(opts.StartLevel); err != nil {
			m.levels.SetNotice(err.Error())
		}
	}
	return m
}

// Init initializes the session.
func (m AppModel) Init() tea.Cmd {
	if m.screen == screenGame && m.game != nil {
		return m.game.Init()
	}
	return m.levels.Init()
}

// Update handles messages for the session.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenProgress:
		return m.updateProgress(msg)
	default:
		return m.updateLevels(msg)
	}
}

// updateLevels handles updates while the level selector is shown.
func (m AppModel) updateLevels(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.levels.Update(msg)
	if menu, ok := newMenu.(LevelMenuModel); ok {
		m.levels = menu
	}

	switch {
	case m.levels.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.levels.WantsProgress():
		m.progress = NewProgressModel(m.opts.Catalog, m.loadRecord(), m.opts.History, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenProgress
		return m, m.progress.Init()

	case m.levels.Selected() > 0:
		if err := m.startGame(m.levels.Selected()); err != nil {
			m.levels = m.newLevelMenu()
			m.levels.SetNotice(err.Error())
			return m, nil
		}
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates while a game runs.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		m.config = m.game.Config()
		m.game = nil
		m.screen = screenLevels
		m.levels = m.newLevelMenu()
		return m, m.levels.Init()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateProgress handles updates while the progress screen is shown.
func (m AppModel) updateProgress(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.progress.Update(msg)
	if progress, ok := newModel.(ProgressModel); ok {
		m.progress = progress
	}

	if m.progress.IsGoingBack() {
		m.screen = screenLevels
		m.levels = m.newLevelMenu()
		return m, m.levels.Init()
	}

	if m.progress.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// startGame creates a game at the given level and switches to it.
func (m *AppModel) startGame(level int) error {
	game := mousetrap.New(mousetrap.Options{
		Catalog:    m.opts.Catalog,
		Params:     m.opts.Params,
		StartLevel: level,
		Store:      m.opts.Store,
		Results:    m.opts.Results,
		Logger:     m.opts.Logger,
		ShowMouse:  m.opts.ShowMouse,
	})

	gameModel, err := NewGameModel(game, m.config, m.opts.Logger)
	if err != nil {
		m.opts.Logger.Error("could not start game", "level", level, "error", err)
		return err
	}

	m.game = &gameModel
	m.screen = screenGame
	return nil
}

func (m *AppModel) newLevelMenu() LevelMenuModel {
	return NewLevelMenuModel(m.opts.Catalog, m.loadRecord(), m.theme, m.config.ScreenW, m.config.ScreenH)
}

// loadRecord reads the save record for the menus. A failed load shows as
// no progress; the session logs the same failure when a game starts.
func (m *AppModel) loadRecord() mtcore.SaveRecord {
	if m.opts.Store == nil {
		return mtcore.SaveRecord{}
	}
	record, err := m.opts.Store.Load()
	if err != nil {
		m.opts.Logger.Warn("could not load progress", "error", err)
		return mtcore.SaveRecord{}
	}
	return record
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		if m.game != nil {
			return m.game.View()
		}
	case screenProgress:
		return m.progress.View()
	}
	return m.levels.View()
}

// Run starts the Bubble Tea program for a local session.
func Run(opts AppOptions, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewAppModel(opts, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
