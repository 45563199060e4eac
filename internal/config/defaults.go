package config

import (
	_ "embed"
)

//go:embed defaults/mousetrap.yaml
var defaultMousetrapYAML []byte

// DefaultConfig returns the built-in configuration.
// It matches defaults/mousetrap.yaml and backs it up if the embedded file fails to parse.
func DefaultConfig() MousetrapConfig {
	return MousetrapConfig{
		Board: BoardConfig{
			HexSide:           1.0,
			NeighborTolerance: 1.25,
		},
		Mouse: MouseConfig{
			Show: true,
		},
		Levels: []LevelConfig{
			{MouseBlunderPercentage: 25, NumAlreadyRevealed: 11, MapRadius: 5},
			{MouseBlunderPercentage: 15, NumAlreadyRevealed: 10, MapRadius: 6},
			{MouseBlunderPercentage: 20, NumAlreadyRevealed: 8, MapRadius: 6},
		},
		Presets: map[DifficultyPreset]PresetConfig{
			DifficultyEasy:   {BlunderShift: 15, RevealShift: 6},
			DifficultyNormal: {},
			DifficultyHard:   {BlunderShift: -10, RevealShift: -4},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMousetrapYAML
}
