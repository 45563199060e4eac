package mousetrap

import (
	mtcore "github.com/vovakirdan/tui-mousetrap/internal/games/mousetrap/core"
)

// Snapshot captures the adapter state for tests and debugging.
type Snapshot struct {
	Session    mtcore.Snapshot
	Cursor     mtcore.Axial
	CursorCell mtcore.CellID
	Message    string
	TooSmall   bool
	Finished   bool
}

// Snapshot returns the current adapter snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{CursorCell: mtcore.NoCell}
	}
	id, ok := g.session.Board().CellAt(g.cursor)
	if !ok {
		id = mtcore.NoCell
	}
	return Snapshot{
		Session:    g.session.Snapshot(),
		Cursor:     g.cursor,
		CursorCell: id,
		Message:    g.message,
		TooSmall:   g.tooSmall,
		Finished:   g.finished,
	}
}
