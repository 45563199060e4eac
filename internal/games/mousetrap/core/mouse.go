package core

import "math/rand"

// Mouse is the hidden token the player tries to corner.
type Mouse struct {
	cell       CellID
	blunderPct int
}

// NewMouse places a mouse on a cell.
func NewMouse(cell CellID, blunderPct int) *Mouse {
	return &Mouse{cell: cell, blunderPct: blunderPct}
}

// Cell returns the cell the mouse stands on.
func (m *Mouse) Cell() CellID {
	return m.cell
}

// LegalMoves returns the unrevealed neighbors of the mouse's cell.
func (m *Mouse) LegalMoves(b *Board) []CellID {
	return Neighbors(b, m.cell, false)
}

// Move picks and applies the next step. With probability blunderPct/100 the
// mouse takes a uniformly random legal move; otherwise it takes the move
// farthest from the player's last reveal (edge cells first, then lowest id,
// on ties). Returns false when no legal move exists.
func (m *Mouse) Move(b *Board, lastReveal CellID, rng *rand.Rand) (CellID, bool) {
	moves := m.LegalMoves(b)
	if len(moves) == 0 {
		return m.cell, false
	}

	var next CellID
	if rng.Intn(100) < m.blunderPct {
		next = moves[rng.Intn(len(moves))]
	} else {
		next = fleeFrom(b, moves, lastReveal)
	}

	m.cell = next
	return next, true
}

// fleeFrom picks the move maximizing distance from the threat cell.
// moves must be sorted by id and non-empty.
func fleeFrom(b *Board, moves []CellID, threat CellID) CellID {
	from := b.cells[b.Origin()].Pos
	if b.Contains(threat) {
		from = b.cells[threat].Pos
	}

	best := moves[0]
	bestDist := b.cells[best].Pos.Dist(from)
	for _, id := range moves[1:] {
		d := b.cells[id].Pos.Dist(from)
		switch {
		case d > bestDist+minNeighborDist:
		case d >= bestDist-minNeighborDist && b.cells[id].Edge && !b.cells[best].Edge:
		default:
			continue
		}
		best, bestDist = id, d
	}
	return best
}
