package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionFlip) {
		t.Error("Zero frame should have no actions")
	}

	f.Set(ActionFlip)
	f.Set(ActionLeft)
	if !f.Has(ActionFlip) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionNext) {
		t.Error("Unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionFlip) || f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameClick(t *testing.T) {
	f := NewInputFrame()
	f.SetClick(3, 4)
	f.SetClick(7, 9)

	if !f.Clicked || f.Click != (Point{X: 7, Y: 9}) {
		t.Errorf("Click = %+v (clicked=%v), expected latest press (7, 9)", f.Click, f.Clicked)
	}

	f.Clear()
	if f.Clicked {
		t.Error("Clear should drop the click")
	}
}

func TestActionString(t *testing.T) {
	if ActionFlip.String() != "Flip" {
		t.Errorf("ActionFlip.String() = %q", ActionFlip.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
