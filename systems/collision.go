package systems

import (
	"math"

	"github.com/automoto/flagpole/components"
	cfg "github.com/automoto/flagpole/config"
	"github.com/automoto/flagpole/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves every physics body by its velocity, one axis at a
// time, stopping against solids and the world edges.
func UpdateCollisions(ecs *ecs.ECS) {
	dt := cfg.DeltaTime()
	worldW, worldH := worldSize(ecs)

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		physics := components.Physics.Get(e)

		if dx := physics.VelX * dt; dx != 0 {
			if solid := nearestSolid(obj.Object, dx, 0); solid != nil {
				if dx > 0 {
					obj.X = solid.X - obj.W
				} else {
					obj.X = solid.X + solid.W
				}
				physics.VelX = rebound(physics.VelX, physics.BounceX)
			} else {
				obj.X += dx
			}
		}

		if dy := physics.VelY * dt; dy != 0 {
			if solid := nearestSolid(obj.Object, 0, dy); solid != nil {
				if dy > 0 {
					obj.Y = solid.Y - obj.H
				} else {
					obj.Y = solid.Y + solid.H
				}
				physics.VelY = rebound(physics.VelY, physics.BounceY)
			} else {
				obj.Y += dy
			}
		}

		if physics.CollideWorldBounds && worldW > 0 {
			switch {
			case obj.X < 0:
				obj.X = 0
				physics.VelX = math.Abs(rebound(physics.VelX, physics.BounceX))
			case obj.X+obj.W > worldW:
				obj.X = worldW - obj.W
				physics.VelX = -math.Abs(rebound(physics.VelX, physics.BounceX))
			}
			switch {
			case obj.Y < 0:
				obj.Y = 0
				physics.VelY = math.Abs(rebound(physics.VelY, physics.BounceY))
			case obj.Y+obj.H > worldH:
				obj.Y = worldH - obj.H
				physics.VelY = -math.Abs(rebound(physics.VelY, physics.BounceY))
			}
		}

		physics.OnGround = nil
		if physics.VelY >= 0 {
			physics.OnGround = components.SolidAt(obj.Object, 0, 1)
		}

		obj.Update()
	})
}

// rebound reverses v scaled by bounce. Results under the rest threshold stop.
func rebound(v, bounce float64) float64 {
	out := -v * bounce
	if math.Abs(out) < cfg.Physics.RestThreshold {
		return 0
	}
	return out
}

// nearestSolid returns the first solid obj would hit moving by (dx, dy)
// along a single axis.
func nearestSolid(obj *resolv.Object, dx, dy float64) *resolv.Object {
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return nil
	}

	var nearest *resolv.Object
	best := math.Inf(1)
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !components.Overlapping(obj, solid, dx, dy) {
			continue
		}
		var dist float64
		switch {
		case dx > 0:
			dist = solid.X - (obj.X + obj.W)
		case dx < 0:
			dist = obj.X - (solid.X + solid.W)
		case dy > 0:
			dist = solid.Y - (obj.Y + obj.H)
		default:
			dist = obj.Y - (solid.Y + solid.H)
		}
		if dist < best {
			best = dist
			nearest = solid
		}
	}
	return nearest
}

func worldSize(ecs *ecs.ECS) (float64, float64) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return 0, 0
	}
	level := components.Level.Get(entry).CurrentLevel
	if level == nil {
		return 0, 0
	}
	return float64(level.Width), float64(level.Height)
}
