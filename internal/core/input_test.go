package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := Frame(ActionUp, ActionConfirm)

	if !f.Has(ActionUp) || !f.Has(ActionConfirm) || f.Has(ActionDown) {
		t.Errorf("Frame() actions = %v", f.Actions)
	}

	f.Clear()
	if !f.Empty() {
		t.Errorf("after Clear, frame should be empty, got %v", f.Actions)
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set() on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionConfirm, "Confirm"},
		{ActionNext, "Next"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
