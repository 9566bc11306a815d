package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.PointAt(12)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionLeft) || f.Pointer != nil {
		t.Errorf("Clear() should reset actions and pointer")
	}
	if !clone.Has(ActionLeft) {
		t.Errorf("clone should keep ActionLeft")
	}
	if clone.Pointer == nil || *clone.Pointer != 12 {
		t.Errorf("clone pointer = %v, expected 12", clone.Pointer)
	}

	var zero InputFrame
	if zero.Has(ActionAdvance) {
		t.Errorf("zero frame should have no actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionAdvance.String() != "Advance" {
		t.Errorf("ActionAdvance.String() = %q", ActionAdvance.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
