package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mousetrap/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		force  bool
	}{
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"q", runeKey('q'), core.ActionQuit, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"k", runeKey('k'), core.ActionUp, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"j", runeKey('j'), core.ActionDown, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space", runeKey(' '), core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"n", runeKey('n'), core.ActionNext, false},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, force := km.MapKey(tc.msg)
			if action != tc.action || force != tc.force {
				t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tc.msg.String(), action, force, tc.action, tc.force)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('x'), &frame) || !frame.Empty() {
		t.Error("unbound key changed the frame")
	}
	if km.MapKeyToFrame(runeKey('d'), &frame) || !frame.Has(core.ActionRight) {
		t.Error("d should set ActionRight")
	}
	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame) {
		t.Error("ctrl+c should report a forced quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey('q'), MenuActionQuit},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionProgress},
		{runeKey('z'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}
