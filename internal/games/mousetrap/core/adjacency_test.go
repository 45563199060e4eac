package core

import (
	"slices"
	"testing"
)

func TestNeighborsOfOrigin(t *testing.T) {
	b := mustGenerate(t, 2, 0, 1)

	got := Neighbors(b, b.Origin(), false)
	expected := []CellID{1, 2, 3, 4, 5, 6}
	if !slices.Equal(got, expected) {
		t.Errorf("Neighbors(origin) = %v, expected %v", got, expected)
	}
}

func TestNeighborsSkipRevealed(t *testing.T) {
	b := mustGenerate(t, 2, 0, 1)
	b.reveal(2)
	b.reveal(5)

	got := Neighbors(b, b.Origin(), false)
	expected := []CellID{1, 3, 4, 6}
	if !slices.Equal(got, expected) {
		t.Errorf("Neighbors(origin, allowRevealed=false) = %v, expected %v", got, expected)
	}

	all := Neighbors(b, b.Origin(), true)
	if len(all) != 6 {
		t.Errorf("Neighbors(origin, allowRevealed=true) returned %d cells, expected 6", len(all))
	}
}

func TestNeighborsNeverIncludeOriginOrRevealed(t *testing.T) {
	b := mustGenerate(t, 4, 25, 3)

	for _, c := range b.Cells() {
		for _, n := range Neighbors(b, c.ID, false) {
			if n == c.ID {
				t.Fatalf("cell %d lists itself as neighbor", c.ID)
			}
			if b.IsRevealed(n) {
				t.Fatalf("cell %d lists revealed cell %d", c.ID, n)
			}
		}
	}
}

func TestNeighborsMatchLattice(t *testing.T) {
	dirs := []Axial{{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1}}

	for radius := 0; radius <= 6; radius++ {
		b := mustGenerate(t, radius, 0, 1)

		for _, c := range b.Cells() {
			var expected []CellID
			for _, d := range dirs {
				if id, ok := b.CellAt(Axial{Q: c.Hex.Q + d.Q, R: c.Hex.R + d.R}); ok {
					expected = append(expected, id)
				}
			}
			slices.Sort(expected)

			got := Neighbors(b, c.ID, true)
			if !slices.Equal(got, expected) {
				t.Errorf("radius %d: Neighbors(%d) = %v, expected %v", radius, c.ID, got, expected)
			}
		}
	}
}

func TestNeighborsMatchBruteForce(t *testing.T) {
	params := GenParams{HexSide: 2.8, NeighborTolerance: 1.5}
	b, err := Generate(NewLevel(1, 0, 30, 5), params, newRand(11))
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	limit := params.stepLength() * params.NeighborTolerance

	for _, c := range b.Cells() {
		var expected []CellID
		for _, o := range b.Cells() {
			d := o.Pos.Dist(c.Pos)
			if d > minNeighborDist && d <= limit && !o.Revealed {
				expected = append(expected, o.ID)
			}
		}

		got := Neighbors(b, c.ID, false)
		if !slices.Equal(got, expected) {
			t.Errorf("Neighbors(%d) = %v, brute force gave %v", c.ID, got, expected)
		}
	}
}

func TestNeighborsEmptyAndUnknown(t *testing.T) {
	b := mustGenerate(t, 0, 0, 1)
	if got := Neighbors(b, b.Origin(), true); len(got) != 0 {
		t.Errorf("single cell board has neighbors %v", got)
	}
	if got := Neighbors(b, 42, true); got != nil {
		t.Errorf("unknown cell has neighbors %v", got)
	}
}
