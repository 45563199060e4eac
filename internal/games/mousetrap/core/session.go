package core

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"
)

// State is a phase of the session state machine.
type State int

const (
	StatePlayerTurn State = iota
	StateMouseTurn
	StateMouseWon
	StatePlayerWon
	StateEnded
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlayerTurn:
		return "player_turn"
	case StateMouseTurn:
		return "mouse_turn"
	case StateMouseWon:
		return "mouse_won"
	case StatePlayerWon:
		return "player_won"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game on the board is over.
func (s State) Terminal() bool {
	return s == StateMouseWon || s == StatePlayerWon
}

// EventKind identifies what the host asks the session to do.
type EventKind int

const (
	EventClick EventKind = iota
	EventRetry
	EventQuit
	EventAdvance
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventClick:
		return "click"
	case EventRetry:
		return "retry"
	case EventQuit:
		return "quit"
	case EventAdvance:
		return "advance"
	default:
		return "unknown"
	}
}

// Event is the single input type of the state machine.
type Event struct {
	Kind EventKind
	Cell CellID // Target of EventClick
}

// ClickEvent returns a click on the given cell.
func ClickEvent(id CellID) Event { return Event{Kind: EventClick, Cell: id} }

// RetryEvent restarts the current level.
func RetryEvent() Event { return Event{Kind: EventRetry, Cell: NoCell} }

// QuitEvent persists progress and ends the session.
func QuitEvent() Event { return Event{Kind: EventQuit, Cell: NoCell} }

// AdvanceEvent starts the next catalog level after a win.
func AdvanceEvent() Event { return Event{Kind: EventAdvance, Cell: NoCell} }

// Transition describes one state change.
type Transition struct {
	From  State
	To    State
	Event Event
}

// Snapshot is a read-only view of the session. It never contains the
// mouse position.
type Snapshot struct {
	Level           Level
	State           State
	UserTurn        bool
	MouseWin        bool
	UserWin         bool
	Turns           int
	Revealed        int
	Cells           int
	LastReveal      CellID
	LevelsCompleted []int
}

// SessionOptions holds the collaborators of a session. Every field is optional.
type SessionOptions struct {
	Catalog *Catalog       // Defaults to DefaultCatalog()
	Params  *GenParams     // Defaults to DefaultGenParams()
	Rand    *rand.Rand     // Defaults to a time-seeded source
	Store   ProgressStore  // No persistence when nil
	Results ResultRecorder // No result history when nil
	Logger  *log.Logger    // Discards output when nil
}

// Session is one playthrough: it owns the level, board, mouse and turn state.
// It is not safe for concurrent use.
type Session struct {
	catalog *Catalog
	params  GenParams
	rng     *rand.Rand
	store   ProgressStore
	results ResultRecorder
	logger  *log.Logger

	level      Level
	board      *Board
	mouse      *Mouse
	state      State
	turns      int
	lastReveal CellID
	record     SaveRecord

	observers map[int]func(Transition)
	nextObsID int
}

// NewSession loads saved progress and starts the level with the given
// 1-based index. A failed load is logged and treated as no prior save.
func NewSession(levelIndex int, opts SessionOptions) (*Session, error) {
	s := &Session{
		catalog:   opts.Catalog,
		rng:       opts.Rand,
		store:     opts.Store,
		results:   opts.Results,
		logger:    opts.Logger,
		observers: make(map[int]func(Transition)),
	}
	if s.catalog == nil {
		s.catalog = DefaultCatalog()
	}
	if opts.Params != nil {
		s.params = *opts.Params
	} else {
		s.params = DefaultGenParams()
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	if s.store != nil {
		record, err := s.store.Load()
		if err != nil {
			s.logger.Warn("could not load saved progress, starting fresh", "error", err)
			record = SaveRecord{}
		}
		s.record = record
	}

	level, err := s.catalog.Level(levelIndex)
	if err != nil {
		return nil, err
	}
	if err := s.load(level); err != nil {
		return nil, err
	}
	return s, nil
}

// load generates a fresh board for level and resets all turn state.
func (s *Session) load(level Level) error {
	board, err := Generate(level, s.params, s.rng)
	if err != nil {
		return fmt.Errorf("generating level %d: %w", level.Index, err)
	}
	s.level = level
	s.board = board
	s.mouse = NewMouse(board.Origin(), level.MouseBlunderPercentage)
	s.state = StatePlayerTurn
	s.turns = 0
	s.lastReveal = NoCell

	s.logger.Info("level started",
		"level", level.Index,
		"radius", level.MapRadius,
		"cells", board.Len(),
		"revealed", board.RevealedCount(),
	)
	return nil
}

// Apply feeds one event to the state machine and returns the resulting
// snapshot. Ignored clicks return an unchanged snapshot and no error.
// A persistence failure is returned wrapped in ErrPersistence; the
// session state is kept.
func (s *Session) Apply(ev Event) (Snapshot, error) {
	if s.state == StateEnded {
		return s.Snapshot(), ErrSessionEnded
	}

	var err error
	switch ev.Kind {
	case EventClick:
		err = s.click(ev)
	case EventRetry:
		err = s.retry(ev)
	case EventQuit:
		err = s.quit(ev)
	case EventAdvance:
		err = s.advance(ev)
	default:
		err = fmt.Errorf("unsupported event kind %d", ev.Kind)
	}
	return s.Snapshot(), err
}

// Click reveals a cell on the player's turn.
func (s *Session) Click(id CellID) (Snapshot, error) { return s.Apply(ClickEvent(id)) }

// Retry regenerates the current level from scratch.
func (s *Session) Retry() (Snapshot, error) { return s.Apply(RetryEvent()) }

// Quit persists progress and ends the session.
func (s *Session) Quit() (Snapshot, error) { return s.Apply(QuitEvent()) }

// Advance starts the next level after a win.
func (s *Session) Advance() (Snapshot, error) { return s.Apply(AdvanceEvent()) }

func (s *Session) click(ev Event) error {
	if !s.board.Contains(ev.Cell) {
		return fmt.Errorf("%w: %d", ErrUnknownCell, ev.Cell)
	}
	if s.state != StatePlayerTurn || ev.Cell == s.mouse.Cell() || s.board.IsRevealed(ev.Cell) {
		return nil
	}

	s.board.reveal(ev.Cell)
	s.turns++
	s.lastReveal = ev.Cell

	if len(s.mouse.LegalMoves(s.board)) == 0 {
		return s.finish(StatePlayerWon, ev)
	}

	s.transition(StateMouseTurn, ev)
	if _, moved := s.mouse.Move(s.board, s.lastReveal, s.rng); !moved {
		return s.finish(StatePlayerWon, ev)
	}
	if s.board.IsEdge(s.mouse.Cell()) {
		return s.finish(StateMouseWon, ev)
	}
	s.transition(StatePlayerTurn, ev)
	return nil
}

// finish enters a terminal state, records the result and flushes progress.
func (s *Session) finish(to State, ev Event) error {
	outcome := OutcomeMouseWon
	if to == StatePlayerWon {
		outcome = OutcomePlayerWon
		s.record.LevelsCompleted = append(s.record.LevelsCompleted, s.level.Index-1)
	}
	s.transition(to, ev)
	s.logger.Info("game over", "level", s.level.Index, "outcome", outcome, "turns", s.turns)

	var errs []error
	if s.results != nil {
		if err := s.results.RecordResult(Result{Level: s.level.Index, Outcome: outcome, Turns: s.turns}); err != nil {
			s.logger.Error("could not record result", "error", err)
			errs = append(errs, fmt.Errorf("%w: recording result: %w", ErrPersistence, err))
		}
	}
	if err := s.save(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (s *Session) retry(ev Event) error {
	from := s.state
	if err := s.load(s.level); err != nil {
		return err
	}
	s.notify(Transition{From: from, To: s.state, Event: ev})
	return nil
}

func (s *Session) advance(ev Event) error {
	if s.state != StatePlayerWon {
		return nil
	}
	next, err := s.catalog.Next(s.level.Index)
	if err != nil {
		return err
	}
	if err := s.load(next); err != nil {
		return err
	}
	s.notify(Transition{From: StatePlayerWon, To: s.state, Event: ev})
	return nil
}

func (s *Session) quit(ev Event) error {
	if err := s.save(); err != nil {
		return err
	}
	s.transition(StateEnded, ev)
	return nil
}

// save flushes the record; failures are logged and wrapped in ErrPersistence.
func (s *Session) save() error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(s.record.Clone()); err != nil {
		s.logger.Error("could not save progress", "error", err)
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

func (s *Session) transition(to State, ev Event) {
	from := s.state
	s.state = to
	s.notify(Transition{From: from, To: to, Event: ev})
}

func (s *Session) notify(t Transition) {
	ids := make([]int, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := s.observers[id]; ok {
			fn(t)
		}
	}
}

// Subscribe registers fn to be called after every state change, in
// subscription order. The returned function removes the subscription.
func (s *Session) Subscribe(fn func(Transition)) (unsubscribe func()) {
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	return func() { delete(s.observers, id) }
}

// Snapshot returns a read-only view of the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Level:           s.level,
		State:           s.state,
		UserTurn:        s.state == StatePlayerTurn,
		MouseWin:        s.state == StateMouseWon,
		UserWin:         s.state == StatePlayerWon,
		Turns:           s.turns,
		Revealed:        s.board.RevealedCount(),
		Cells:           s.board.Len(),
		LastReveal:      s.lastReveal,
		LevelsCompleted: slices.Clone(s.record.LevelsCompleted),
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Level returns the level being played.
func (s *Session) Level() Level {
	return s.level
}

// Catalog returns the level table of the session.
func (s *Session) Catalog() *Catalog {
	return s.catalog
}

// Board returns the current board. Hosts must treat it as read-only.
func (s *Session) Board() *Board {
	return s.board
}

// MouseCell returns the mouse position. Hosts call it only to draw the mouse.
func (s *Session) MouseCell() CellID {
	return s.mouse.Cell()
}

// Record returns a copy of the save record.
func (s *Session) Record() SaveRecord {
	return s.record.Clone()
}
