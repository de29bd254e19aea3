package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the collider.
func (o *ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

// SetCenter moves the collider so its middle sits at (x, y).
func (o *ObjectData) SetCenter(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

// Overlapping reports whether a, offset by (dx, dy), intersects b.
// Touching edges do not count.
func Overlapping(a, b *resolv.Object, dx, dy float64) bool {
	return a.X+dx < b.X+b.W && a.X+dx+a.W > b.X &&
		a.Y+dy < b.Y+b.H && a.Y+dy+a.H > b.Y
}
