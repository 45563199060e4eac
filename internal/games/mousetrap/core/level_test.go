package core

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", c.Len())
	}

	tests := []struct {
		index, blunder, revealed, radius int
	}{
		{1, 25, 11, 5},
		{2, 15, 10, 6},
		{3, 20, 8, 6},
	}
	for _, tc := range tests {
		lvl, err := c.Level(tc.index)
		if err != nil {
			t.Fatalf("Level(%d) failed: %v", tc.index, err)
		}
		if lvl.Index != tc.index || lvl.MouseBlunderPercentage != tc.blunder ||
			lvl.NumAlreadyRevealed != tc.revealed || lvl.MapRadius != tc.radius {
			t.Errorf("Level(%d) = %+v", tc.index, lvl)
		}
		if err := lvl.Validate(); err != nil {
			t.Errorf("Level(%d) invalid: %v", tc.index, err)
		}
	}
}

func TestCatalogOutOfRange(t *testing.T) {
	c := DefaultCatalog()
	for _, idx := range []int{-1, 0, 4, 100} {
		if _, err := c.Level(idx); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Level(%d) error = %v, expected ErrOutOfRange", idx, err)
		}
	}
	if _, err := c.Next(3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Next(3) error = %v, expected ErrOutOfRange", err)
	}
}

func TestCameraSize(t *testing.T) {
	tests := []struct {
		radius   int
		expected float64
	}{
		{0, 3},
		{6, 28},
		{5, 25.0/6.0*5 + 3},
	}
	for _, tc := range tests {
		if got := CameraSize(tc.radius); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("CameraSize(%d) = %f, expected %f", tc.radius, got, tc.expected)
		}
	}
}

func TestNewCatalogValidation(t *testing.T) {
	tests := []struct {
		name   string
		levels []Level
	}{
		{"empty", nil},
		{"gap in indices", []Level{NewLevel(1, 0, 0, 1), NewLevel(3, 0, 0, 1)}},
		{"starts at zero", []Level{NewLevel(0, 0, 0, 1)}},
		{"too many reveals", []Level{NewLevel(1, 0, 19, 2)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewCatalog(tc.levels); !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("NewCatalog() error = %v, expected ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestNewCatalogDerivesCameraSize(t *testing.T) {
	c, err := NewCatalog([]Level{{Index: 1, MapRadius: 6}})
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}
	lvl, _ := c.Level(1)
	if math.Abs(lvl.CameraSize-28) > 1e-9 {
		t.Errorf("CameraSize = %f, expected 28", lvl.CameraSize)
	}
}

func TestSaveRecordHelpers(t *testing.T) {
	r := SaveRecord{LevelsCompleted: []int{0, 2, 0}}

	if !r.Completed(1) || r.Completed(2) || !r.Completed(3) {
		t.Errorf("Completed() mismatch for %v", r.LevelsCompleted)
	}
	if got := r.HighestCompleted(); got != 3 {
		t.Errorf("HighestCompleted() = %d, expected 3", got)
	}

	clone := r.Clone()
	clone.LevelsCompleted[0] = 9
	if r.LevelsCompleted[0] != 0 {
		t.Error("Clone() shares the backing array")
	}
}
