package core

// CellID identifies a cell by its emission index on the board.
type CellID int

// NoCell marks the absence of a cell.
const NoCell CellID = -1

// Cell is one hexagonal board position.
type Cell struct {
	ID       CellID // Emission index, 0 is the origin
	Pos      Point  // World position
	Hex      Axial  // Lattice coordinate derived from Pos
	Revealed bool
	Edge     bool // On the outermost ring
}

// Board is the ordered set of cells generated for one level.
// Cell positions never change after generation; only Revealed does.
type Board struct {
	radius int
	side   float64
	cells  []Cell
	byHex  map[Axial]CellID
	index  *spatialIndex
}

// CellCount returns the number of cells of a spiral board with the given radius.
func CellCount(radius int) int {
	return 1 + 3*radius*(radius+1)
}

// EdgeBegins returns the emission counter at which the outermost ring starts.
// The counter counts the origin as 1, so a cell is an edge cell when
// ID+1 >= EdgeBegins(radius).
func EdgeBegins(radius int) int {
	begins := 2
	for i := 1; i < radius; i++ {
		begins += 6 * i
	}
	return begins
}

// Radius returns the ring count of the board.
func (b *Board) Radius() int {
	return b.radius
}

// HexSide returns the lattice scale used to place the cells.
func (b *Board) HexSide() float64 {
	return b.side
}

// Len returns the number of cells.
func (b *Board) Len() int {
	return len(b.cells)
}

// Cell returns a copy of the cell with the given id.
func (b *Board) Cell(id CellID) (Cell, bool) {
	if !b.Contains(id) {
		return Cell{}, false
	}
	return b.cells[id], true
}

// Cells returns a copy of all cells in emission order.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Contains reports whether id belongs to the board.
func (b *Board) Contains(id CellID) bool {
	return id >= 0 && int(id) < len(b.cells)
}

// Origin returns the id of the origin cell.
func (b *Board) Origin() CellID {
	return 0
}

// CellAt returns the cell at an axial coordinate.
func (b *Board) CellAt(a Axial) (CellID, bool) {
	id, ok := b.byHex[a]
	return id, ok
}

// RevealedCount returns how many cells are revealed.
func (b *Board) RevealedCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].Revealed {
			n++
		}
	}
	return n
}

// reveal marks a cell as revealed. Returns false if the cell was unknown
// or already revealed.
func (b *Board) reveal(id CellID) bool {
	if !b.Contains(id) || b.cells[id].Revealed {
		return false
	}
	b.cells[id].Revealed = true
	return true
}

// IsRevealed reports whether the cell is revealed.
func (b *Board) IsRevealed(id CellID) bool {
	return b.Contains(id) && b.cells[id].Revealed
}

// IsEdge reports whether the cell lies on the outermost ring.
func (b *Board) IsEdge(id CellID) bool {
	return b.Contains(id) && b.cells[id].Edge
}

// appendCell adds a cell at p and flags it as edge when its counter
// reaches edgeBegins.
func (b *Board) appendCell(p Point, edgeBegins int) {
	id := CellID(len(b.cells))
	c := Cell{
		ID:   id,
		Pos:  p,
		Hex:  PointToAxial(p, b.side),
		Edge: id > 0 && int(id)+1 >= edgeBegins,
	}
	b.cells = append(b.cells, c)
	b.byHex[c.Hex] = id
}
