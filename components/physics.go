package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsData is an arcade body. Velocities are in units per second.
type PhysicsData struct {
	VelX, VelY         float64
	Gravity            bool
	BounceX, BounceY   float64
	MaxSpeedX          float64 // 0 means unclamped
	MaxSpeedY          float64
	CollideWorldBounds bool
	OnGround           *resolv.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()
