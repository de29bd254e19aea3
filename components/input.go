package components

import (
	cfg "github.com/automoto/flagpole/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed     bool // Currently held down
	JustPressed bool // Pressed this frame
}

// InputData is the merged keyboard and touch intent for the frame.
type InputData struct {
	Actions       [cfg.ActionCount]ActionState
	Left, Right   bool
	JumpRequested bool
}

var Input = donburi.NewComponentType[InputData]()
