package rocket

import "testing"

func TestInputPressRelease(t *testing.T) {
	c := NewInputController()

	c.KeyPress("right", ModNone)
	if !c.Actions().Has(ActionMoveRight) {
		t.Error("MoveRight should be active after pressing right")
	}

	c.KeyRelease("right", ModNone)
	if c.Actions().Has(ActionMoveRight) {
		t.Error("MoveRight should not be active after releasing right")
	}
}

func TestInputNoLeakedAction(t *testing.T) {
	c := NewInputController()
	before := c.Actions()

	c.KeyPress("space", ModNone)
	c.KeyRelease("space", ModNone)

	after := c.Actions()
	if len(after.Actions) != len(before.Actions) {
		t.Errorf("press+release leaked an action: before=%v after=%v", before.Actions, after.Actions)
	}
	if after.Has(ActionFire) {
		t.Error("Fire should not be active after press+release")
	}
}

func TestInputRepeatedPressIdempotent(t *testing.T) {
	c := NewInputController()

	c.KeyPress("a", ModNone)
	c.KeyPress("a", ModNone)
	c.KeyPress("a", ModNone)
	if !c.Actions().Has(ActionMoveLeft) {
		t.Error("repeated press should keep the action held, not toggle it")
	}

	c.KeyRelease("a", ModNone)
	if c.Actions().Has(ActionMoveLeft) {
		t.Error("a single release should clear the hold")
	}
}

func TestInputUnknownKeyIgnored(t *testing.T) {
	c := NewInputController()

	c.KeyPress("f12", ModNone)
	if !c.Actions().Empty() {
		t.Errorf("unknown key should be ignored, got %v", c.Actions().Actions)
	}

	// Releasing an unknown or never-pressed key must not panic or mutate.
	c.KeyRelease("f12", ModNone)
	c.KeyRelease("left", ModNone)
	if !c.Actions().Empty() {
		t.Error("action set should still be empty")
	}
}

func TestInputMultipleKeysSameAction(t *testing.T) {
	c := NewInputController()

	// "left" and "a" both map to MoveLeft; releasing one must not clear
	// the action while the other is still held.
	c.KeyPress("left", ModNone)
	c.KeyPress("a", ModNone)
	c.KeyRelease("left", ModNone)

	if !c.Actions().Has(ActionMoveLeft) {
		t.Error("MoveLeft should stay active while a is held")
	}

	c.KeyRelease("a", ModNone)
	if c.Actions().Has(ActionMoveLeft) {
		t.Error("MoveLeft should clear once both keys are released")
	}
}

func TestInputActionsIsSnapshot(t *testing.T) {
	c := NewInputController()
	c.KeyPress("up", ModNone)

	snap := c.Actions()
	c.KeyRelease("up", ModNone)

	if !snap.Has(ActionMoveUp) {
		t.Error("snapshot should reflect state at call time, not later releases")
	}
}

func TestInputSimultaneousActions(t *testing.T) {
	c := NewInputController()
	c.KeyPress("up", ModNone)
	c.KeyPress("right", ModNone)
	c.KeyPress("space", ModNone)

	set := c.Actions()
	for _, a := range []Action{ActionMoveUp, ActionMoveRight, ActionFire} {
		if !set.Has(a) {
			t.Errorf("expected %v to be active", a)
		}
	}
}
