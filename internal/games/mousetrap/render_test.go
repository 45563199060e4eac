package mousetrap

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-mousetrap/internal/core"
	mtcore "github.com/vovakirdan/tui-mousetrap/internal/games/mousetrap/core"
)

func render(g *Game) *core.Screen {
	dst := core.NewScreen(g.screenW, g.screenH)
	g.Render(dst)
	return dst
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, Options{ShowMouse: true}, mtcore.NewLevel(1, 0, 0, 2))
	dst := render(g)

	ox, oy := g.origin()
	if got := dst.GetCell(ox, oy); got.Rune != glyphMouse || got.Color != core.ColorMouse {
		t.Errorf("origin = %+v, expected the mouse", got)
	}
	if dst.Get(ox-1, oy) != '[' || dst.Get(ox+1, oy) != ']' {
		t.Errorf("cursor brackets missing around origin: %q", dst.Row(oy))
	}

	cells := 0
	for y := hudHeight; y < dst.Height()-footerHeight; y++ {
		for x := 0; x < dst.Width(); x++ {
			switch dst.Get(x, y) {
			case glyphOpen, glyphBlocked, glyphMouse:
				cells++
			}
		}
	}
	if cells != mtcore.CellCount(2) {
		t.Errorf("rendered %d cells, expected %d", cells, mtcore.CellCount(2))
	}
}

func TestRenderPositions(t *testing.T) {
	g := newTestGame(t, Options{}, mtcore.NewLevel(1, 0, 0, 2))
	ox, oy := g.origin()

	tests := []struct {
		hex  mtcore.Axial
		x, y int
	}{
		{mtcore.Axial{Q: 0, R: 1}, ox, oy - 2},
		{mtcore.Axial{Q: 1, R: 0}, ox + columnStep, oy - 1},
		{mtcore.Axial{Q: 1, R: -1}, ox + columnStep, oy + 1},
		{mtcore.Axial{Q: -2, R: 2}, ox - 2*columnStep, oy - 2},
	}
	for _, tc := range tests {
		if x, y := g.cellPosition(tc.hex); x != tc.x || y != tc.y {
			t.Errorf("cellPosition(%v) = (%d, %d), expected (%d, %d)", tc.hex, x, y, tc.x, tc.y)
		}
	}
}

func TestRenderHidesMouse(t *testing.T) {
	g := newTestGame(t, Options{ShowMouse: false}, mtcore.NewLevel(1, 0, 0, 2))
	dst := render(g)

	ox, oy := g.origin()
	if got := dst.Get(ox, oy); got != glyphOpen {
		t.Errorf("origin = %q, expected a plain cell while the mouse is hidden", got)
	}
}

func TestRenderRevealedAndEdge(t *testing.T) {
	g := newTestGame(t, Options{}, mtcore.NewLevel(1, 0, 0, 2))
	g.Step(core.Frame(core.ActionUp))
	g.Step(core.Frame(core.ActionConfirm))
	dst := render(g)

	x, y := g.cellPosition(mtcore.Axial{Q: 0, R: 1})
	if got := dst.GetCell(x, y); got.Rune != glyphBlocked || got.Color != core.ColorRevealed {
		t.Errorf("revealed cell = %+v", got)
	}

	x, y = g.cellPosition(mtcore.Axial{Q: 2, R: -2})
	if got := dst.GetCell(x, y); got.Color != core.ColorEdge {
		t.Errorf("edge cell color = %v, expected edge", got.Color)
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t, Options{}, mtcore.NewLevel(1, 30, 4, 2))
	dst := render(g)

	hud := dst.Row(1)
	for _, want := range []string{"Level 1/1", "Turns 0", "Blocked 4/19", "Blunder 30%"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q lacks %q", hud, want)
		}
	}
	if status := dst.Row(dst.Height() - 2); !strings.Contains(status, "Your turn") {
		t.Errorf("status line = %q", status)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, Options{}, mtcore.NewLevel(1, 0, 0, 6))
	g.Resize(40, 12)
	if !g.Snapshot().TooSmall {
		t.Fatal("40x12 should be too small for radius 6")
	}

	dst := render(g)
	if !strings.Contains(dst.String(), "Window too small") {
		t.Error("too small message missing")
	}

	g.Resize(80, 40)
	if g.Snapshot().TooSmall {
		t.Error("80x40 should fit radius 6")
	}

	w, h := boardExtent(6)
	g.Resize(w, h+hudHeight+footerHeight)
	if g.Snapshot().TooSmall {
		t.Errorf("%dx%d should exactly fit radius 6", w, h+hudHeight+footerHeight)
	}
	g.Resize(w-1, h+hudHeight+footerHeight)
	if !g.Snapshot().TooSmall {
		t.Errorf("%dx%d should be too small for radius 6", w-1, h+hudHeight+footerHeight)
	}
}
