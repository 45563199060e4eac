// Package mousetrap adapts the MouseTrap session to the platform game
// contract: a cursor on the hex lattice, semantic actions and a screen
// renderer. All rules live in the core subpackage.
package mousetrap

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mousetrap/internal/core"
	mtcore "github.com/vovakirdan/tui-mousetrap/internal/games/mousetrap/core"
)

// Options configures a game. Zero values fall back to the core defaults.
type Options struct {
	Catalog    *mtcore.Catalog
	Params     *mtcore.GenParams
	StartLevel int // 1-based; 0 means the first level
	Store      mtcore.ProgressStore
	Results    mtcore.ResultRecorder
	Logger     *log.Logger
	ShowMouse  bool
}

// Game drives one core session from platform input.
type Game struct {
	opts    Options
	session *mtcore.Session
	cursor  mtcore.Axial

	screenW  int
	screenH  int
	tooSmall bool

	message  string
	alert    bool // message reports a failure
	finished bool // all catalog levels were won in this run
}

// New creates a game. Call Reset before the first Step.
func New(opts Options) *Game {
	if opts.Catalog == nil {
		opts.Catalog = mtcore.DefaultCatalog()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Game{opts: opts}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "mousetrap"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "MouseTrap"
}

// Reset starts a new session at the configured start level.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	start := g.opts.StartLevel
	if start == 0 {
		start = 1
	}

	session, err := mtcore.NewSession(start, mtcore.SessionOptions{
		Catalog: g.opts.Catalog,
		Params:  g.opts.Params,
		Rand:    rand.New(rand.NewSource(cfg.Seed)),
		Store:   g.opts.Store,
		Results: g.opts.Results,
		Logger:  g.opts.Logger,
	})
	if err != nil {
		return err
	}

	g.session = session
	g.session.Subscribe(g.onTransition)
	g.cursor = mtcore.Axial{}
	g.finished = false
	g.setMessage("", false)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	return nil
}

// Resize records the screen size used for layout.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	if g.session == nil {
		return
	}
	w, h := boardExtent(g.session.Board().Radius())
	g.tooSmall = g.screenW < w || g.screenH < h+hudHeight+footerHeight
}

// Step applies one input frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil || in.Empty() {
		return core.StepResult{State: g.State()}
	}

	var err error
	switch {
	case in.Has(core.ActionQuit):
		_, err = g.session.Quit()
	case in.Has(core.ActionRestart):
		_, err = g.session.Retry()
		g.cursor = mtcore.Axial{}
	case in.Has(core.ActionNext):
		err = g.advance()
	case in.Has(core.ActionConfirm):
		err = g.reveal()
	default:
		g.moveCursor(in)
	}

	if err != nil {
		g.setMessage(errorMessage(err), true)
	}
	return core.StepResult{State: g.State(), Err: err}
}

func (g *Game) reveal() error {
	id, ok := g.session.Board().CellAt(g.cursor)
	if !ok {
		return nil
	}
	_, err := g.session.Click(id)
	return err
}

func (g *Game) advance() error {
	if g.session.State() != mtcore.StatePlayerWon {
		return nil
	}
	_, err := g.session.Advance()
	if errors.Is(err, mtcore.ErrOutOfRange) {
		g.finished = true
		g.setMessage("Every level cleared! R: replay  Q: quit", false)
		return nil
	}
	if err == nil {
		g.cursor = mtcore.Axial{}
		g.checkScreenSize()
	}
	return err
}

// moveCursor walks the cursor to a neighboring cell. Left and right zigzag
// between the two diagonal neighbors so the cursor stays on the same band of rows.
func (g *Game) moveCursor(in core.InputFrame) {
	next := g.cursor
	odd := (g.cursor.Q%2+2)%2 == 1
	switch {
	case in.Has(core.ActionUp):
		next.R++
	case in.Has(core.ActionDown):
		next.R--
	case in.Has(core.ActionLeft):
		next.Q--
		if odd {
			next.R++
		}
	case in.Has(core.ActionRight):
		next.Q++
		if !odd {
			next.R--
		}
	default:
		return
	}
	if _, ok := g.session.Board().CellAt(next); ok {
		g.cursor = next
	}
}

// onTransition keeps the status line in sync with the session.
func (g *Game) onTransition(t mtcore.Transition) {
	switch t.To {
	case mtcore.StatePlayerTurn:
		if t.Event.Kind != mtcore.EventClick {
			g.setMessage("", false)
		}
	case mtcore.StatePlayerWon:
		g.setMessage("Mouse trapped! N: next level  R: replay", false)
	case mtcore.StateMouseWon:
		g.setMessage("The mouse escaped! R: retry", false)
	case mtcore.StateEnded:
		g.setMessage("Progress saved. Bye!", false)
	}
}

func (g *Game) setMessage(msg string, alert bool) {
	g.message = msg
	g.alert = alert
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, mtcore.ErrPersistence):
		return "Could not save progress. Q: try again"
	case errors.Is(err, mtcore.ErrSessionEnded):
		return "Session is over"
	default:
		return err.Error()
	}
}

// State returns the status reported to the host.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	snap := g.session.Snapshot()
	return core.GameState{
		Level:    snap.Level.Index,
		Turns:    snap.Turns,
		GameOver: snap.State.Terminal(),
		Won:      snap.UserWin,
		Ended:    snap.State == mtcore.StateEnded,
	}
}

// Session exposes the running session for hosts that need read access.
func (g *Game) Session() *mtcore.Session {
	return g.session
}
