package systems

import (
	"math"

	"github.com/automoto/flagpole/components"
	cfg "github.com/automoto/flagpole/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies gravity and speed limits. Movement happens in
// UpdateCollisions.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := cfg.DeltaTime()

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		if physics.Gravity {
			physics.VelY += cfg.Physics.Gravity * dt
		}

		if physics.MaxSpeedX > 0 {
			physics.VelX = clamp(physics.VelX, -physics.MaxSpeedX, physics.MaxSpeedX)
		}
		if physics.MaxSpeedY > 0 {
			physics.VelY = clamp(physics.VelY, -physics.MaxSpeedY, physics.MaxSpeedY)
		}
	})
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
