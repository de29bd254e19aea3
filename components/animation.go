package components

import (
	"github.com/automoto/flagpole/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Sheet       *ebiten.Image
	SheetPath   string
	FrameWidth  int
	FrameHeight int
	Current     *animations.Animation
}

var Animation = donburi.NewComponentType[AnimationData]()
