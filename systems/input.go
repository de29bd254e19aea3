package systems

import (
	"github.com/automoto/flagpole/components"
	cfg "github.com/automoto/flagpole/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard and merges it with the touch pad, if any.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	for action := cfg.ActionID(0); action < cfg.ActionCount; action++ {
		binding, ok := cfg.Input.Bindings[action]
		if !ok {
			input.Actions[action] = components.ActionState{}
			continue
		}
		var state components.ActionState
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				state.Pressed = true
			}
			if inpututil.IsKeyJustPressed(key) {
				state.JustPressed = true
			}
		}
		input.Actions[action] = state
	}

	resolveIntent(input, touchSource(ecs))

	if input.Actions[cfg.ActionDebug].JustPressed {
		cfg.Debug.Hitboxes = !cfg.Debug.Hitboxes
	}
}

// resolveIntent folds key states and the touch pad into left/right/jump.
// Left and right follow what is held; jump needs a fresh key press or a
// latched touch press.
func resolveIntent(input *components.InputData, touch components.TouchSource) {
	var touchLeft, touchRight, touchJump bool
	if touch != nil {
		touchLeft, touchRight = touch.Held()
		touchJump = touch.JumpLatched()
	}

	input.Left = input.Actions[cfg.ActionMoveLeft].Pressed || touchLeft
	input.Right = input.Actions[cfg.ActionMoveRight].Pressed || touchRight
	input.JumpRequested = input.Actions[cfg.ActionJump].JustPressed || touchJump
}

// GetAction returns the state of an action for this frame.
func GetAction(input *components.InputData, action cfg.ActionID) components.ActionState {
	if action < 0 || action >= cfg.ActionCount {
		return components.ActionState{}
	}
	return input.Actions[action]
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if _, ok := components.Input.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Input))
	}
	entry, _ := components.Input.First(ecs.World)
	return components.Input.Get(entry)
}

func touchSource(ecs *ecs.ECS) components.TouchSource {
	entry, ok := components.Touch.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Touch.Get(entry).Source
}

// consumeJump clears the jump request and any latched touch press.
func consumeJump(ecs *ecs.ECS, input *components.InputData) {
	input.JumpRequested = false
	if touch := touchSource(ecs); touch != nil {
		touch.ConsumeJump()
	}
}
