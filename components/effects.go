package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// FlashData tints an entity while Active is set. The revert is a named
// timer on the same entity, so a new hit pushes the revert back.
type FlashData struct {
	Active bool
	Color  color.RGBA
}

var Flash = donburi.NewComponentType[FlashData]()
