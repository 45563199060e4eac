package config

import "testing"

func TestParsePreset(t *testing.T) {
	tests := []struct {
		input    string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"normal", DifficultyNormal, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		name     string
		preset   DifficultyPreset
		level    LevelConfig
		expected LevelConfig
	}{
		{
			name:     "easy shifts up",
			preset:   DifficultyEasy,
			level:    LevelConfig{MouseBlunderPercentage: 25, NumAlreadyRevealed: 11, MapRadius: 5},
			expected: LevelConfig{MouseBlunderPercentage: 40, NumAlreadyRevealed: 17, MapRadius: 5},
		},
		{
			name:     "normal keeps values",
			preset:   DifficultyNormal,
			level:    LevelConfig{MouseBlunderPercentage: 25, NumAlreadyRevealed: 11, MapRadius: 5},
			expected: LevelConfig{MouseBlunderPercentage: 25, NumAlreadyRevealed: 11, MapRadius: 5},
		},
		{
			name:     "hard clamps at zero",
			preset:   DifficultyHard,
			level:    LevelConfig{MouseBlunderPercentage: 5, NumAlreadyRevealed: 2, MapRadius: 2},
			expected: LevelConfig{MouseBlunderPercentage: 0, NumAlreadyRevealed: 0, MapRadius: 2},
		},
		{
			name:     "easy clamps to board size",
			preset:   DifficultyEasy,
			level:    LevelConfig{MouseBlunderPercentage: 95, NumAlreadyRevealed: 4, MapRadius: 1},
			expected: LevelConfig{MouseBlunderPercentage: 100, NumAlreadyRevealed: 6, MapRadius: 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Levels = []LevelConfig{tc.level}
			ApplyPreset(&cfg, tc.preset)
			if cfg.Levels[0] != tc.expected {
				t.Errorf("ApplyPreset() = %+v, expected %+v", cfg.Levels[0], tc.expected)
			}
			if _, err := cfg.Catalog(); err != nil {
				t.Errorf("preset produced invalid table: %v", err)
			}
		})
	}
}

func TestApplyPresetUnknownIsNoop(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyPreset("custom"))
	if cfg.Levels[0] != DefaultConfig().Levels[0] {
		t.Errorf("unknown preset changed levels: %+v", cfg.Levels[0])
	}
}
