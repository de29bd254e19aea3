package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Snapped  bool // false until the first follow places the camera on the target
}

var Camera = donburi.NewComponentType[CameraData]()
