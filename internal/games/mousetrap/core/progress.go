package core

import "slices"

// SaveRecord is the persisted player progress: the 0-based positions of
// completed levels in completion order. Duplicates are allowed.
type SaveRecord struct {
	LevelsCompleted []int
}

// Clone returns a deep copy of the record.
func (r SaveRecord) Clone() SaveRecord {
	return SaveRecord{LevelsCompleted: slices.Clone(r.LevelsCompleted)}
}

// Completed reports whether the level with the given 1-based index was ever completed.
func (r SaveRecord) Completed(index int) bool {
	return slices.Contains(r.LevelsCompleted, index-1)
}

// HighestCompleted returns the highest completed 1-based level index, or 0.
func (r SaveRecord) HighestCompleted() int {
	if len(r.LevelsCompleted) == 0 {
		return 0
	}
	return slices.Max(r.LevelsCompleted) + 1
}

// ProgressStore persists a SaveRecord as a whole.
// Load returns an empty record and no error when nothing was saved yet.
type ProgressStore interface {
	Save(record SaveRecord) error
	Load() (SaveRecord, error)
}

// Outcome is how a finished game ended.
type Outcome string

const (
	OutcomePlayerWon Outcome = "player_won"
	OutcomeMouseWon  Outcome = "mouse_won"
)

// Result summarizes one finished game.
type Result struct {
	Level   int // 1-based level index
	Outcome Outcome
	Turns   int // Player reveals made during the game
}

// ResultRecorder receives one Result per finished game.
type ResultRecorder interface {
	RecordResult(r Result) error
}
