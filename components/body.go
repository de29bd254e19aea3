package components

import (
	"github.com/automoto/flagpole/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Body is what gameplay systems know about the player's physical presence.
// The concrete variant is chosen once when the player is created.
type Body interface {
	Position() (x, y float64) // centre
	SetVelocityX(vx float64)
	VelocityY() float64
	SetVelocityY(vy float64)
	Jump(impulse float64)
	Grounded() bool
}

// VelocityBody drives a sprite through its physics velocity.
type VelocityBody struct {
	Entry *donburi.Entry
}

func (b *VelocityBody) Position() (float64, float64) {
	return Object.Get(b.Entry).Center()
}

func (b *VelocityBody) SetVelocityX(vx float64) {
	Physics.Get(b.Entry).VelX = vx
}

func (b *VelocityBody) VelocityY() float64 {
	return Physics.Get(b.Entry).VelY
}

func (b *VelocityBody) SetVelocityY(vy float64) {
	Physics.Get(b.Entry).VelY = vy
}

func (b *VelocityBody) Jump(impulse float64) {
	physics := Physics.Get(b.Entry)
	physics.VelY = impulse
	physics.OnGround = nil
}

func (b *VelocityBody) Grounded() bool {
	return Physics.Get(b.Entry).OnGround != nil
}

const hopTimer = "hop"

// ShapeBody moves a plain rectangle by stepping its position and jumps with
// a fixed up-then-down hop. Gravity keeps acting during the hop, so the body
// is already falling when the hop is undone.
type ShapeBody struct {
	Entry      *donburi.Entry
	Step       float64 // pixels per frame
	HopHeight  float64
	HopFrames  int
	WorldWidth float64
}

func (b *ShapeBody) Position() (float64, float64) {
	return Object.Get(b.Entry).Center()
}

func (b *ShapeBody) SetVelocityX(vx float64) {
	var dx float64
	switch {
	case vx < 0:
		dx = -b.Step
	case vx > 0:
		dx = b.Step
	default:
		return
	}

	obj := Object.Get(b.Entry)
	if SolidAt(obj.Object, dx, 0) != nil {
		return
	}
	obj.X += dx
	if obj.X < 0 {
		obj.X = 0
	}
	if b.WorldWidth > 0 && obj.X+obj.W > b.WorldWidth {
		obj.X = b.WorldWidth - obj.W
	}
	obj.Update()
}

func (b *ShapeBody) VelocityY() float64 {
	return Physics.Get(b.Entry).VelY
}

// SetVelocityY cancels the descent of a pending hop, leaving the body where it is.
func (b *ShapeBody) SetVelocityY(vy float64) {
	Timers.Get(b.Entry).Cancel(hopTimer)
	Physics.Get(b.Entry).VelY = vy
}

// Jump ignores the impulse and hops instead. A hop in progress is not restarted.
func (b *ShapeBody) Jump(float64) {
	timers := Timers.Get(b.Entry)
	if timers.Pending(hopTimer) {
		return
	}

	obj := Object.Get(b.Entry)
	physics := Physics.Get(b.Entry)
	obj.Y -= b.HopHeight
	obj.Update()
	physics.VelY = 0
	physics.OnGround = nil

	timers.Schedule(hopTimer, b.HopFrames, b.land)
}

func (b *ShapeBody) land() {
	if !b.Entry.Valid() {
		return
	}
	obj := Object.Get(b.Entry)
	physics := Physics.Get(b.Entry)
	obj.Y += b.HopHeight
	if solid := SolidAt(obj.Object, 0, 0); solid != nil {
		obj.Y = solid.Y - obj.H
		physics.VelY = 0
		physics.OnGround = solid
	}
	obj.Update()
}

func (b *ShapeBody) Grounded() bool {
	if Timers.Get(b.Entry).Pending(hopTimer) {
		return false
	}
	return Physics.Get(b.Entry).OnGround != nil
}

// Hopping reports whether a hop descent is still pending.
func (b *ShapeBody) Hopping() bool {
	return Timers.Get(b.Entry).Pending(hopTimer)
}

// SolidAt returns a solid that obj would intersect after moving by (dx, dy).
func SolidAt(obj *resolv.Object, dx, dy float64) *resolv.Object {
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return nil
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if Overlapping(obj, solid, dx, dy) {
			return solid
		}
	}
	return nil
}
