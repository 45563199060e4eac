package core

import "fmt"

// Level holds the difficulty knobs of one catalog entry.
type Level struct {
	Index                  int     // 1-based position in the catalog
	MouseBlunderPercentage int     // Chance (0-100) that the mouse picks a random legal move
	NumAlreadyRevealed     int     // Cells revealed before the first turn
	MapRadius              int     // Number of rings around the origin
	CameraSize             float64 // Viewport half-height hint for hosts
}

// NewLevel creates a level and derives its camera size from the radius.
func NewLevel(index, blunderPct, numRevealed, radius int) Level {
	return Level{
		Index:                  index,
		MouseBlunderPercentage: blunderPct,
		NumAlreadyRevealed:     numRevealed,
		MapRadius:              radius,
		CameraSize:             CameraSize(radius),
	}
}

// CameraSize returns the viewport size needed to frame a board of the given radius.
func CameraSize(radius int) float64 {
	return 25.0/6.0*float64(radius) + 3
}

// Validate checks that the level can produce a board.
func (l Level) Validate() error {
	if l.MapRadius < 0 {
		return fmt.Errorf("%w: level %d: negative map radius %d", ErrInvalidConfiguration, l.Index, l.MapRadius)
	}
	if l.MouseBlunderPercentage < 0 || l.MouseBlunderPercentage > 100 {
		return fmt.Errorf("%w: level %d: blunder percentage %d not in 0..100",
			ErrInvalidConfiguration, l.Index, l.MouseBlunderPercentage)
	}
	available := CellCount(l.MapRadius) - 1
	if l.NumAlreadyRevealed < 0 || l.NumAlreadyRevealed > available {
		return fmt.Errorf("%w: level %d: cannot pre-reveal %d of %d cells",
			ErrInvalidConfiguration, l.Index, l.NumAlreadyRevealed, available)
	}
	return nil
}

// Catalog is a fixed, ordered table of levels looked up by 1-based index.
type Catalog struct {
	levels []Level
}

// DefaultCatalog returns the built-in three-level table.
func DefaultCatalog() *Catalog {
	return &Catalog{levels: []Level{
		NewLevel(1, 25, 11, 5),
		NewLevel(2, 15, 10, 6),
		NewLevel(3, 20, 8, 6),
	}}
}

// NewCatalog validates and wraps a level table. Entries must be indexed
// 1..n in order.
func NewCatalog(levels []Level) (*Catalog, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: empty level catalog", ErrInvalidConfiguration)
	}
	out := make([]Level, len(levels))
	for i, lvl := range levels {
		if lvl.Index != i+1 {
			return nil, fmt.Errorf("%w: level at position %d has index %d", ErrInvalidConfiguration, i+1, lvl.Index)
		}
		if err := lvl.Validate(); err != nil {
			return nil, err
		}
		lvl.CameraSize = CameraSize(lvl.MapRadius)
		out[i] = lvl
	}
	return &Catalog{levels: out}, nil
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// Level returns the level with the given 1-based index.
func (c *Catalog) Level(index int) (Level, error) {
	if index < 1 || index > len(c.levels) {
		return Level{}, fmt.Errorf("%w: %d (catalog has %d levels)", ErrOutOfRange, index, len(c.levels))
	}
	return c.levels[index-1], nil
}

// Next returns the level following index.
func (c *Catalog) Next(index int) (Level, error) {
	return c.Level(index + 1)
}

// Levels returns a copy of the table.
func (c *Catalog) Levels() []Level {
	out := make([]Level, len(c.levels))
	copy(out, c.levels)
	return out
}
