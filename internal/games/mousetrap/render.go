package mousetrap

import (
	"fmt"

	"github.com/vovakirdan/tui-mousetrap/internal/core"
	mtcore "github.com/vovakirdan/tui-mousetrap/internal/games/mousetrap/core"
)

const (
	hudHeight    = 2 // Title and level info
	footerHeight = 2 // Status line and key help
	columnStep   = 4 // Screen columns between two lattice columns

	glyphOpen    = '○'
	glyphBlocked = '●'
	glyphMouse   = 'M'
)

// boardExtent returns the screen size a board of the given radius needs.
// Each lattice column is columnStep wide and neighbors in a column are two
// rows apart, so a ring adds two rows above and below.
func boardExtent(radius int) (w, h int) {
	return 2*radius*columnStep + 3, 4*radius + 1
}

// origin returns the screen position of the origin cell.
func (g *Game) origin() (x, y int) {
	radius := g.session.Board().Radius()
	_, h := boardExtent(radius)
	top := hudHeight + max(0, (g.screenH-hudHeight-footerHeight-h)/2)
	return g.screenW / 2, top + 2*radius
}

// cellPosition maps a lattice coordinate to its screen position.
func (g *Game) cellPosition(a mtcore.Axial) (x, y int) {
	ox, oy := g.origin()
	return ox + a.Q*columnStep, oy - a.Row()
}

// Render draws the board, HUD and status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := boardExtent(g.session.Board().Radius())
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorWarning)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w, h+hudHeight+footerHeight), core.ColorHint)
}

func (g *Game) renderHUD(dst *core.Screen) {
	snap := g.session.Snapshot()
	dst.DrawTextCentered(0, "M O U S E T R A P", core.ColorTitle)

	info := fmt.Sprintf("Level %d/%d   Turns %d   Blocked %d/%d",
		snap.Level.Index, g.opts.Catalog.Len(), snap.Turns, snap.Revealed, snap.Cells)
	if snap.Level.MouseBlunderPercentage > 0 {
		info += fmt.Sprintf("   Blunder %d%%", snap.Level.MouseBlunderPercentage)
	}
	dst.DrawTextCentered(1, info, core.ColorHint)
}

func (g *Game) renderBoard(dst *core.Screen) {
	board := g.session.Board()
	mouse := g.session.MouseCell()
	showMouse := g.opts.ShowMouse || g.session.State().Terminal()

	for _, c := range board.Cells() {
		x, y := g.cellPosition(c.Hex)
		glyph, color := glyphOpen, core.ColorHidden
		switch {
		case showMouse && c.ID == mouse:
			glyph, color = glyphMouse, core.ColorMouse
		case c.Revealed:
			glyph, color = glyphBlocked, core.ColorRevealed
		case c.Edge:
			color = core.ColorEdge
		}
		dst.SetColored(x, y, glyph, color)
	}

	x, y := g.cellPosition(g.cursor)
	dst.SetColored(x-1, y, '[', core.ColorCursor)
	dst.SetColored(x+1, y, ']', core.ColorCursor)
}

func (g *Game) renderFooter(dst *core.Screen) {
	status, color := g.statusLine()
	dst.DrawTextCentered(g.screenH-2, status, color)
	dst.DrawTextCentered(g.screenH-1, "Arrows/HJKL: move  Enter: block  R: retry  Esc: levels  Q: quit", core.ColorHint)
}

func (g *Game) statusLine() (string, core.Color) {
	if g.alert {
		return g.message, core.ColorWarning
	}
	if g.message != "" {
		switch g.session.State() {
		case mtcore.StatePlayerWon:
			return g.message, core.ColorWin
		case mtcore.StateMouseWon:
			return g.message, core.ColorLose
		}
		return g.message, core.ColorDefault
	}
	if g.session.State() == mtcore.StatePlayerTurn {
		return "Your turn: block a cell to trap the mouse", core.ColorDefault
	}
	return "", core.ColorDefault
}
