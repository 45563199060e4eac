// mousetrap is a hex-grid deduction game for the terminal: block cells
// until the mouse is cornered, before it reaches the edge of the board.
//
// Usage:
//
//	mousetrap play              - Play locally (level selector first)
//	mousetrap play --level 2    - Jump straight into a level
//	mousetrap levels            - Show the level table
//	mousetrap progress          - Show completed levels and game history
//	mousetrap serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set host tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--save <path>       - Set save file path (default: ~/.mousetrap/save.yaml)
//	--db <path>         - Set history database path (default: ~/.mousetrap/mousetrap.db)
//	--log-level <level> - Set log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagSavePath string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mousetrap",
	Short: "MouseTrap - trap the mouse on a hex board",
	Long: `MouseTrap is a turn-based deduction game played in the terminal.

Each turn you block one cell of a hexagonal board. The mouse then moves
one step. Corner it before it reaches the outer ring.

Available commands:
  play      - Play locally
  levels    - Show the level table
  progress  - Show completed levels and game history
  serve     - Start SSH server for remote play

Examples:
  mousetrap play
  mousetrap play --level 3 --difficulty hard
  mousetrap levels
  mousetrap serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Host tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagSavePath, "save", "~/.mousetrap/save.yaml", "Path to the save file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mousetrap/mousetrap.db", "Path to the history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(serveCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
