package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionConfirm        // Enter, Space - reveal the cell under the cursor
	ActionBack           // B, Escape - back to the level selector
	ActionRestart        // R - retry the level
	ActionNext           // N - next level after a win
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionNext:
		return "Next"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered between two host ticks.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Frame is a shorthand for an input frame with the given actions set.
func Frame(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}
