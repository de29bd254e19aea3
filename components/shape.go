package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// ShapeData draws a filled primitive over the object's bounds.
type ShapeData struct {
	Kind  ShapeKind
	Color color.RGBA
}

var Shape = donburi.NewComponentType[ShapeData]()
