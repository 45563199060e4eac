package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mousetrap/internal/config"
	"github.com/vovakirdan/tui-mousetrap/internal/core"
)

// Game is the contract between the host and a game.
// Games contain pure logic with no Bubble Tea dependency; the host handles
// input mapping, timing and rendering.
type Game interface {
	// ID returns a unique identifier, used for screenshots and logs.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new game. The RuntimeConfig provides screen
	// dimensions and the RNG seed.
	Reset(cfg core.RuntimeConfig) error

	// Resize informs the game about new screen dimensions.
	Resize(w, h int)

	// Step applies the input collected since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameModel runs one game with back-to-menu capability.
type GameModel struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	leaving    bool // back was pressed, waiting for the quit save
	quitting   bool
	backToMenu bool
}

// NewGameModel resets the game and wraps it in a model.
func NewGameModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) (GameModel, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := game.Reset(cfg); err != nil {
		return GameModel{}, err
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keyMapper:  NewKeyMapper(),
	}, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one game step with the collected input.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	in := m.inputFrame
	if in.Has(core.ActionBack) {
		// Leaving the game saves progress the same way quitting does.
		in = core.Frame(core.ActionQuit)
		m.leaving = true
	} else if in.Has(core.ActionQuit) {
		m.leaving = false
	}

	result := m.game.Step(in)
	m.gameState = result.State
	m.inputFrame = core.NewInputFrame()

	if result.Err != nil {
		m.logger.Warn("game step failed", "game", m.game.ID(), "error", result.Err)
		m.leaving = false
	}

	if m.gameState.Ended {
		if m.leaving {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, config.AppDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Config returns the runtime config, including the latest window size.
func (m GameModel) Config() core.RuntimeConfig {
	return m.config
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level selector.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
