package core

import (
	"math"
	"sort"
)

// minNeighborDist keeps the origin cell out of its own neighbor set.
const minNeighborDist = 1e-2

// bucket is a spatial hash key.
type bucket struct {
	x, y int
}

// spatialIndex hashes cell centers into square buckets as wide as the
// query radius, so a radius query only inspects the 3x3 surrounding buckets.
type spatialIndex struct {
	size    float64
	buckets map[bucket][]CellID
}

func newSpatialIndex(cells []Cell, radius float64) *spatialIndex {
	idx := &spatialIndex{
		size:    radius,
		buckets: make(map[bucket][]CellID),
	}
	for _, c := range cells {
		k := idx.key(c.Pos)
		idx.buckets[k] = append(idx.buckets[k], c.ID)
	}
	return idx
}

func (s *spatialIndex) key(p Point) bucket {
	return bucket{
		x: int(math.Floor(p.X / s.size)),
		y: int(math.Floor(p.Y / s.size)),
	}
}

// within returns the ids of all cells whose center lies within radius of p.
func (s *spatialIndex) within(cells []Cell, p Point, radius float64) []CellID {
	center := s.key(p)
	var out []CellID
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for _, id := range s.buckets[bucket{x: center.x + dx, y: center.y + dy}] {
				if cells[id].Pos.Dist(p) <= radius {
					out = append(out, id)
				}
			}
		}
	}
	return out
}

// Neighbors returns the cells adjacent to origin, sorted by id. Revealed
// cells are skipped unless allowRevealed is set. Unknown origins yield nil.
func Neighbors(b *Board, origin CellID, allowRevealed bool) []CellID {
	if !b.Contains(origin) {
		return nil
	}
	center := b.cells[origin].Pos

	var out []CellID
	for _, id := range b.index.within(b.cells, center, b.index.size) {
		c := b.cells[id]
		if c.Pos.Dist(center) <= minNeighborDist {
			continue
		}
		if !allowRevealed && c.Revealed {
			continue
		}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
