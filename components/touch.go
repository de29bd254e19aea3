package components

import "github.com/yohamta/donburi"

// TouchSource is an on-screen control pad. A missing pad contributes nothing.
type TouchSource interface {
	Held() (left, right bool)
	JumpLatched() bool
	ConsumeJump()
}

type TouchData struct {
	Source TouchSource
}

var Touch = donburi.NewComponentType[TouchData]()
