package ui

import "testing"

func TestTouchJumpLatch(t *testing.T) {
	tc := &TouchControls{visible: true}

	steps := []struct {
		name    string
		jump    bool
		consume bool
		want    bool
	}{
		{"press latches", true, false, true},
		{"still held stays latched", true, false, true},
		{"consumed while held", true, true, false},
		{"held after consume does not relatch", true, false, false},
		{"release", false, false, false},
		{"press again", true, false, true},
		{"release clears", false, false, false},
	}

	for _, s := range steps {
		tc.applyPressed(false, false, s.jump)
		if s.consume {
			tc.ConsumeJump()
		}
		if got := tc.JumpLatched(); got != s.want {
			t.Errorf("%s: JumpLatched = %v, want %v", s.name, got, s.want)
		}
	}
}

func TestTouchHeldDirections(t *testing.T) {
	tc := &TouchControls{visible: true}
	tc.applyPressed(true, false, false)

	left, right := tc.Held()
	if !left || right {
		t.Errorf("Held = (%v, %v), want (true, false)", left, right)
	}
}

func TestHiddenTouchControlsReportNothing(t *testing.T) {
	tc := &TouchControls{}
	tc.applyPressed(true, true, true)

	if left, right := tc.Held(); left || right {
		t.Errorf("hidden Held = (%v, %v)", left, right)
	}
	if tc.JumpLatched() {
		t.Error("hidden pad reported a jump")
	}
}
