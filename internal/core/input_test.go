package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFlap) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionFlap)
	f.Set(ActionMute)
	if !f.Has(ActionFlap) || !f.Has(ActionMute) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionQuit) {
		t.Error("unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionFlap) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionFlap, "Flap"},
		{ActionMute, "Mute"},
		{ActionScreenshot, "Screenshot"},
		{ActionBack, "Back"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}
