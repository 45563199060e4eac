package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mousetrap/internal/config"
	mtcore "github.com/vovakirdan/tui-mousetrap/internal/games/mousetrap/core"
)

// Flags shared by the commands that build a level catalog.
var (
	flagConfig     string
	flagDifficulty string
)

// gameSetup is the configuration resolved from --config and --difficulty.
type gameSetup struct {
	Config  config.MousetrapConfig
	Catalog *mtcore.Catalog
	Params  mtcore.GenParams
	Preset  config.DifficultyPreset
}

// loadGameSetup loads the config, applies the difficulty preset and builds
// the catalog.
func loadGameSetup() (gameSetup, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return gameSetup{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return gameSetup{}, err
	}
	config.ApplyPreset(&cfg, preset)

	catalog, err := cfg.Catalog()
	if err != nil {
		return gameSetup{}, err
	}

	return gameSetup{
		Config:  cfg,
		Catalog: catalog,
		Params:  cfg.GenParams(),
		Preset:  preset,
	}, nil
}

// newLogger creates a logger at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens ~/.mousetrap/mousetrap.log for logs written while the
// TUI owns the terminal.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, config.AppDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "mousetrap.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}
