package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if len(f.Actions) != 0 {
		t.Error("new frame should be empty")
	}

	f.Set(ActionRotate)
	if !f.Has(ActionRotate) || f.Has(ActionUnrotate) {
		t.Errorf("Has() mismatch after Set(Rotate): %v", f.Actions)
	}

	f.SetPointer(3, 4, ActionUnrotate)
	if !f.Pointer || f.PointerX != 3 || f.PointerY != 4 || f.PointerAction != ActionUnrotate {
		t.Errorf("SetPointer(3, 4, Unrotate) = %v (%d, %d) %v", f.Pointer, f.PointerX, f.PointerY, f.PointerAction)
	}
	if f.Has(ActionUnrotate) {
		t.Error("pointer action should not count as a keyboard action")
	}

	f.Clear()
	if len(f.Actions) != 0 || f.Has(ActionRotate) || f.Pointer || f.PointerAction != ActionNone {
		t.Error("frame should be empty after Clear")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionRestoreStart.String() != "RestoreStart" {
		t.Errorf("ActionRestoreStart.String() = %q", ActionRestoreStart.String())
	}
	if ToggleActions[2].String() != "ToggleE" {
		t.Errorf("ToggleActions[2] = %q, expected ToggleE", ToggleActions[2].String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
