package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData draws Image centred on the object, scaled uniformly.
type SpriteData struct {
	Image *ebiten.Image
	Scale float64
	FlipX bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
