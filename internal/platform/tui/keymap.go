package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mousetrap/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// force reports ctrl+c, which leaves without waiting for the save.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, force bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case "q":
		return core.ActionQuit, false
	case "w", "k", "up":
		return core.ActionUp, false
	case "s", "j", "down":
		return core.ActionDown, false
	case "a", "h", "left":
		return core.ActionLeft, false
	case "d", "l", "right":
		return core.ActionRight, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "r":
		return core.ActionRestart, false
	case "n":
		return core.ActionNext, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a forced quit.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, force := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return force
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionProgress
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab", "p":
		return MenuActionProgress
	}

	return MenuActionNone
}
