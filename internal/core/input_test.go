package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("NewInputFrame(ActionLeft) should have ActionLeft")
	}
	if f.Has(ActionRight) {
		t.Error("unexpected ActionRight")
	}

	clone := f.Clone()
	f.Set(ActionRight)
	if clone.Has(ActionRight) {
		t.Error("Clone should not share state with the original")
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Clear should remove every action")
	}

	var zero InputFrame
	if zero.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on a zero frame should work")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" {
		t.Errorf("ActionLeft.String() = %q, expected %q", ActionLeft.String(), "Left")
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected Unknown", Action(99).String())
	}
}
