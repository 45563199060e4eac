package main

import (
	"fmt"

	"github.com/spf13/cobra"

	mtcore "github.com/vovakirdan/tui-mousetrap/internal/games/mousetrap/core"
	"github.com/vovakirdan/tui-mousetrap/internal/storage"
)

var (
	flagSlot      string
	flagListSlots bool
	flagReset     bool
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show completed levels and game history",
	Long: `Display the completed levels from the save file and the per-level
statistics from the history database.

The default slot "local" holds games played with 'mousetrap play'. SSH
players get a slot named after their user.

Examples:
  mousetrap progress
  mousetrap progress --slot alice
  mousetrap progress --list-slots
  mousetrap progress --reset`,
	Args: cobra.NoArgs,
	Run:  runProgress,
}

func init() {
	progressCmd.Flags().StringVar(&flagSlot, "slot", storage.DefaultSlot, "History slot to show")
	progressCmd.Flags().BoolVar(&flagListSlots, "list-slots", false, "List the slots with saved progress")
	progressCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the slot's progress and history")
}

func runProgress(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening history database: %v", err)
	}
	defer store.Close()

	if flagListSlots {
		printSlots(store)
		return
	}

	slot := store.Slot(flagSlot)
	local := slot.Name() == storage.DefaultSlot

	if flagReset {
		resetProgress(slot, local)
		return
	}

	// Local play keeps its save record in the save file, SSH slots in the database.
	var progress mtcore.ProgressStore = slot
	if local {
		fileStore, err := storage.NewFileStore(flagSavePath)
		if err != nil {
			fail("%v", err)
		}
		progress = fileStore
	}

	record, err := progress.Load()
	if err != nil {
		fail("loading progress: %v", err)
	}

	fmt.Printf("Progress - %s\n", slot.Name())
	fmt.Println()
	if len(record.LevelsCompleted) == 0 {
		fmt.Println("No levels completed yet.")
	} else {
		fmt.Printf("Levels completed: %v (highest: %d)\n", record.LevelsCompleted, record.HighestCompleted())
	}
	fmt.Println()

	stats, err := slot.LevelStats()
	if err != nil {
		fail("retrieving stats: %v", err)
	}
	if len(stats) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mousetrap play' to record your first game!")
		return
	}

	fmt.Printf("  %-5s  %-5s  %-4s  %-4s  %s\n", "Level", "Plays", "Wins", "Best", "Last played")
	fmt.Printf("  %-5s  %-5s  %-4s  %-4s  %s\n", "-----", "-----", "----", "----", "-----------")
	for _, st := range stats {
		best := "-"
		if st.Wins > 0 {
			best = fmt.Sprintf("%d", st.BestTurns)
		}
		fmt.Printf("  %-5d  %-5d  %-4d  %-4s  %s\n",
			st.Level, st.Plays, st.Wins, best, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func printSlots(store *storage.Store) {
	slots, err := store.Slots()
	if err != nil {
		fail("listing slots: %v", err)
	}
	if len(slots) == 0 {
		fmt.Println("No slots with saved progress.")
		return
	}
	for _, s := range slots {
		fmt.Println(s)
	}
}

func resetProgress(slot *storage.SlotStore, local bool) {
	if err := slot.Clear(); err != nil {
		fail("%v", err)
	}
	if local {
		fileStore, err := storage.NewFileStore(flagSavePath)
		if err != nil {
			fail("%v", err)
		}
		if err := fileStore.Save(mtcore.SaveRecord{}); err != nil {
			fail("%v", err)
		}
	}
	fmt.Printf("Progress of slot %q deleted.\n", slot.Name())
}
