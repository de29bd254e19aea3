package systems

import (
	"math"

	"github.com/automoto/flagpole/components"
	"github.com/automoto/flagpole/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies keeps every walker inside its patrol range. Crossing an
// edge points the walker back inward; it is never teleported.
func UpdateEnemies(ecs *ecs.ECS) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		physics := components.Physics.Get(e)
		cx, _ := components.Object.Get(e).Center()

		speed := enemy.Speed
		if speed == 0 {
			speed = math.Abs(physics.VelX)
		}

		switch {
		case cx < enemy.MinX:
			physics.VelX = speed
		case cx > enemy.MaxX:
			physics.VelX = -speed
		case physics.VelX == 0:
			// Stopped against something; pick the way with more room.
			if cx-enemy.MinX < enemy.MaxX-cx {
				physics.VelX = speed
			} else {
				physics.VelX = -speed
			}
		}

		if anim := components.Animation.Get(e); anim.Current != nil {
			anim.Current.Update()
		}
	})
}
