package systems

import (
	"testing"

	"github.com/automoto/flagpole/components"
	cfg "github.com/automoto/flagpole/config"
)

type fakeTouch struct {
	left, right bool
	jump        bool
	consumed    int
}

func (f *fakeTouch) Held() (bool, bool) { return f.left, f.right }
func (f *fakeTouch) JumpLatched() bool  { return f.jump }
func (f *fakeTouch) ConsumeJump() {
	f.jump = false
	f.consumed++
}

func TestResolveIntent(t *testing.T) {
	tests := []struct {
		name      string
		keys      map[cfg.ActionID]components.ActionState
		touch     *fakeTouch
		wantLeft  bool
		wantRight bool
		wantJump  bool
	}{
		{
			name:     "nothing pressed",
			keys:     nil,
			touch:    nil,
			wantJump: false,
		},
		{
			name:     "left key held",
			keys:     map[cfg.ActionID]components.ActionState{cfg.ActionMoveLeft: {Pressed: true}},
			wantLeft: true,
		},
		{
			name: "jump key held but not fresh",
			keys: map[cfg.ActionID]components.ActionState{cfg.ActionJump: {Pressed: true}},
		},
		{
			name:     "jump key just pressed",
			keys:     map[cfg.ActionID]components.ActionState{cfg.ActionJump: {Pressed: true, JustPressed: true}},
			wantJump: true,
		},
		{
			name:      "touch right",
			touch:     &fakeTouch{right: true},
			wantRight: true,
		},
		{
			name:     "touch jump latched",
			touch:    &fakeTouch{jump: true},
			wantJump: true,
		},
		{
			name:      "keyboard and touch combine",
			keys:      map[cfg.ActionID]components.ActionState{cfg.ActionMoveLeft: {Pressed: true}},
			touch:     &fakeTouch{right: true},
			wantLeft:  true,
			wantRight: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input components.InputData
			for action, state := range tt.keys {
				input.Actions[action] = state
			}

			var touch components.TouchSource
			if tt.touch != nil {
				touch = tt.touch
			}
			resolveIntent(&input, touch)

			if input.Left != tt.wantLeft || input.Right != tt.wantRight || input.JumpRequested != tt.wantJump {
				t.Errorf("intent = (%v, %v, %v), want (%v, %v, %v)",
					input.Left, input.Right, input.JumpRequested,
					tt.wantLeft, tt.wantRight, tt.wantJump)
			}
		})
	}
}

func TestTouchJumpConsumedOnlyWhenJumping(t *testing.T) {
	e := newTestWorld(t)
	player := newSpritePlayer(e, 80, 420)
	touch := &fakeTouch{jump: true}
	touchEntry := e.World.Entry(e.World.Create(components.Touch))
	components.Touch.SetValue(touchEntry, components.TouchData{Source: touch})

	// In the air the held button stays latched for the landing.
	input := getOrCreateInput(e)
	resolveIntent(input, touch)
	UpdatePlayer(e)
	if touch.consumed != 0 {
		t.Fatal("touch jump consumed while airborne")
	}

	settle(t, e, player)
	resolveIntent(input, touch)
	UpdatePlayer(e)
	if touch.consumed != 1 {
		t.Errorf("consumed = %d, want 1", touch.consumed)
	}
	if got := components.Physics.Get(player).VelY; got != cfg.Player.JumpSpeed {
		t.Errorf("velY = %v, want %v", got, cfg.Player.JumpSpeed)
	}
}
