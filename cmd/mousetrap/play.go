package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mousetrap/internal/core"
	"github.com/vovakirdan/tui-mousetrap/internal/platform/tui"
	"github.com/vovakirdan/tui-mousetrap/internal/storage"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play MouseTrap",
	Long: `Start playing MouseTrap in the terminal.

Controls:
  Arrows/WASD/HJKL  - Move the cursor
  Enter/Space       - Block the cell under the cursor
  R                 - Retry the level
  N                 - Next level (after a win)
  Esc/B             - Back to the level selector (saves progress)
  Q                 - Save and quit
  Ctrl+C            - Quit without waiting for the save
  Ctrl+S            - Save a screenshot to ~/.mousetrap/screenshots

Difficulty options:
  easy    - Clumsier mouse, more cells blocked at the start
  normal  - The level table as configured
  hard    - Sharper mouse, fewer cells blocked at the start

Examples:
  mousetrap play
  mousetrap play --level 2
  mousetrap play --difficulty hard
  mousetrap play --config ./my-levels.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at this level (1-based), skipping the selector")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	setup, err := loadGameSetup()
	if err != nil {
		fail("%v", err)
	}
	if flagLevel != 0 {
		if _, err := setup.Catalog.Level(flagLevel); err != nil {
			fail("--level %d: %v", flagLevel, err)
		}
	}

	saveStore, err := storage.NewFileStore(flagSavePath)
	if err != nil {
		fail("%v", err)
	}

	var logOut io.Writer = io.Discard
	if logFile, logErr := openLogFile(); logErr == nil {
		defer logFile.Close()
		logOut = logFile
	}
	logger, err := newLogger(logOut, "mousetrap")
	if err != nil {
		fail("%v", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := tui.AppOptions{
		Catalog:    setup.Catalog,
		Params:     &setup.Params,
		Store:      saveStore,
		ShowMouse:  setup.Config.Mouse.Show,
		StartLevel: flagLevel,
		Logger:     logger,
	}

	// Game history is optional; the game still works without it.
	db, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
	} else {
		slot := db.Slot(storage.DefaultSlot)
		opts.Results = slot
		opts.History = slot
	}

	logger.Info("starting local session",
		"difficulty", setup.Preset, "levels", setup.Catalog.Len(), "save", saveStore.Path())
	runErr := tui.Run(opts, cfg)

	if db != nil {
		db.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
