package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-mousetrap/internal/games/mousetrap/core"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// PresetConfig shifts every level of the table.
// A positive BlunderShift makes the mouse err more often; a positive
// RevealShift blocks more cells before the first turn.
type PresetConfig struct {
	BlunderShift int `yaml:"blunder_shift"`
	RevealShift  int `yaml:"reveal_shift"`
}

// ParsePreset converts a flag value to a preset. An empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset shifts the level table by the preset's adjustments.
// Results are clamped so every level stays valid.
func ApplyPreset(cfg *MousetrapConfig, preset DifficultyPreset) {
	shift, ok := cfg.Presets[preset]
	if !ok {
		return
	}
	for i := range cfg.Levels {
		l := &cfg.Levels[i]
		l.MouseBlunderPercentage = clamp(l.MouseBlunderPercentage+shift.BlunderShift, 0, 100)
		if l.MapRadius >= 0 {
			l.NumAlreadyRevealed = clamp(l.NumAlreadyRevealed+shift.RevealShift, 0, core.CellCount(l.MapRadius)-1)
		}
	}
}

func clamp(val, lo, hi int) int {
	return max(lo, min(val, hi))
}
