// Package config provides YAML-based configuration loading and difficulty
// presets for MouseTrap.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-mousetrap/internal/games/mousetrap/core"
)

// MousetrapConfig contains all configuration for the game.
type MousetrapConfig struct {
	Board   BoardConfig                       `yaml:"board"`
	Mouse   MouseConfig                       `yaml:"mouse"`
	Levels  []LevelConfig                     `yaml:"levels"`
	Presets map[DifficultyPreset]PresetConfig `yaml:"presets"`
}

// BoardConfig defines the board geometry.
type BoardConfig struct {
	HexSide           float64 `yaml:"hex_side"`
	NeighborTolerance float64 `yaml:"neighbor_tolerance"`
}

// MouseConfig defines how the host presents the mouse.
type MouseConfig struct {
	Show bool `yaml:"show"`
}

// LevelConfig is one row of the level table. Its index is its position in the list.
type LevelConfig struct {
	MouseBlunderPercentage int `yaml:"mouse_blunder_percentage"`
	NumAlreadyRevealed     int `yaml:"num_already_revealed"`
	MapRadius              int `yaml:"map_radius"`
}

// GenParams returns the generator parameters of the board section.
func (c MousetrapConfig) GenParams() core.GenParams {
	return core.GenParams{
		HexSide:           c.Board.HexSide,
		NeighborTolerance: c.Board.NeighborTolerance,
	}
}

// Catalog builds the validated level catalog from the level table.
func (c MousetrapConfig) Catalog() (*core.Catalog, error) {
	levels := make([]core.Level, len(c.Levels))
	for i, l := range c.Levels {
		levels[i] = core.NewLevel(i+1, l.MouseBlunderPercentage, l.NumAlreadyRevealed, l.MapRadius)
	}
	catalog, err := core.NewCatalog(levels)
	if err != nil {
		return nil, fmt.Errorf("config: level table: %w", err)
	}
	return catalog, nil
}

// Validate checks the board parameters and the level table.
func (c MousetrapConfig) Validate() error {
	if err := c.GenParams().Validate(); err != nil {
		return fmt.Errorf("config: board: %w", err)
	}
	_, err := c.Catalog()
	return err
}
