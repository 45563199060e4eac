package core

import (
	"fmt"
	"math/rand"
)

// GenParams configures board geometry.
type GenParams struct {
	HexSide           float64 // Distance scale of one spiral step
	NeighborTolerance float64 // Adjacency radius in lattice steps (1 step = sqrt(3)*HexSide)
}

// DefaultGenParams returns the default geometry.
func DefaultGenParams() GenParams {
	return GenParams{
		HexSide:           1.0,
		NeighborTolerance: 1.25,
	}
}

// Validate checks that the geometry can separate neighbors from the next ring.
// The nearest non-adjacent cell is sqrt(3) steps away.
func (p GenParams) Validate() error {
	if p.HexSide <= 0 {
		return fmt.Errorf("%w: hex side must be positive, got %g", ErrInvalidConfiguration, p.HexSide)
	}
	if p.NeighborTolerance <= 1 || p.NeighborTolerance >= sqrt3 {
		return fmt.Errorf("%w: neighbor tolerance %g not in (1, %.3f)",
			ErrInvalidConfiguration, p.NeighborTolerance, sqrt3)
	}
	return nil
}

// stepLength is the center distance between two adjacent cells.
func (p GenParams) stepLength() float64 {
	return sqrt3 * p.HexSide
}

// Generate builds the spiral board for a level and pre-reveals
// NumAlreadyRevealed random non-origin cells using rng.
func Generate(level Level, params GenParams, rng *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}

	b := spiral(level.MapRadius, params.HexSide)
	b.index = newSpatialIndex(b.cells, params.stepLength()*params.NeighborTolerance)
	preReveal(b, level.NumAlreadyRevealed, rng)
	return b, nil
}

// spiral emits the cells ring by ring: for each multiplier it walks the six
// directions mult steps each, and after the "up" direction takes one extra
// step into the next ring unless this is the outermost ring.
func spiral(radius int, side float64) *Board {
	b := &Board{
		radius: radius,
		side:   side,
		cells:  make([]Cell, 0, CellCount(radius)),
		byHex:  make(map[Axial]CellID, CellCount(radius)),
	}
	edgeBegins := EdgeBegins(radius)

	current := Point{}
	b.appendCell(current, edgeBegins)

	for mult := 0; mult <= radius; mult++ {
		for j, step := range spiralSteps {
			delta := step.Scale(side)
			for i := 0; i < mult; i++ {
				current = current.Add(delta)
				b.appendCell(current, edgeBegins)
			}
			if j == stepUp {
				if mult == radius {
					break
				}
				current = current.Add(delta)
				b.appendCell(current, edgeBegins)
			}
		}
	}
	return b
}

// preReveal flips count distinct non-origin cells to revealed.
// The caller guarantees count <= Len()-1.
func preReveal(b *Board, count int, rng *rand.Rand) {
	if count <= 0 {
		return
	}
	candidates := make([]CellID, 0, len(b.cells)-1)
	for i := 1; i < len(b.cells); i++ {
		if !b.cells[i].Revealed {
			candidates = append(candidates, CellID(i))
		}
	}

	// Partial Fisher-Yates: the first count entries become the sample.
	for i := 0; i < count && i < len(candidates); i++ {
		j := i + rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		b.cells[candidates[i]].Revealed = true
	}
}
