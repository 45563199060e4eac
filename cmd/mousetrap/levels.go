package main

import (
	"fmt"

	"github.com/spf13/cobra"

	mtcore "github.com/vovakirdan/tui-mousetrap/internal/games/mousetrap/core"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table",
	Long: `Shows every level of the catalog after the config and difficulty
preset have been applied.

Examples:
  mousetrap levels
  mousetrap levels --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	levelsCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runLevels(_ *cobra.Command, _ []string) {
	setup, err := loadGameSetup()
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Levels (%s)\n", setup.Preset)
	fmt.Println()

	fmt.Printf("  %-5s  %-6s  %-5s  %-7s  %-7s  %s\n", "Level", "Radius", "Cells", "Blocked", "Blunder", "Camera")
	fmt.Printf("  %-5s  %-6s  %-5s  %-7s  %-7s  %s\n", "-----", "------", "-----", "-------", "-------", "------")

	for _, lvl := range setup.Catalog.Levels() {
		fmt.Printf("  %-5d  %-6d  %-5d  %-7d  %-7s  %.1f\n",
			lvl.Index,
			lvl.MapRadius,
			mtcore.CellCount(lvl.MapRadius),
			lvl.NumAlreadyRevealed,
			fmt.Sprintf("%d%%", lvl.MouseBlunderPercentage),
			lvl.CameraSize,
		)
	}

	fmt.Println()
	fmt.Println("Run 'mousetrap play --level <n>' to play a level.")
}
