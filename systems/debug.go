package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/flagpole/components"
	cfg "github.com/automoto/flagpole/config"
	"github.com/automoto/flagpole/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collider in the space and prints frame rates.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Hitboxes {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	ox, oy := cameraOffset(ecs, width, height)

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			x := obj.X + ox
			y := obj.Y + oy
			if x+obj.W < 0 || x > float64(width) || y+obj.H < 0 || y > float64(height) {
				continue
			}

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			switch {
			case obj.HasTags(tags.ResolvSolid):
				c = color.RGBA{100, 100, 100, 255}
			case obj.HasTags(tags.ResolvPlayer):
				c = color.RGBA{0, 0, 255, 255}
			case obj.HasTags(tags.ResolvEnemy):
				c = color.RGBA{255, 0, 0, 255}
			}
			vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.1f TPS: %0.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), 8, height-20)
}
