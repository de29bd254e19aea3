package systems

import (
	"testing"

	"github.com/automoto/flagpole/assets"
	"github.com/automoto/flagpole/components"
	"github.com/automoto/flagpole/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testWorldWidth  = 2400
	testWorldHeight = 540
	testGroundY     = 504
)

// newTestWorld builds a world with a flat ground and the run singletons.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateLevel(e, &assets.Level{Width: testWorldWidth, Height: testWorldHeight})
	factory.CreateSpace(e, testWorldWidth, testWorldHeight, 16, 16)
	factory.CreateCamera(e)
	factory.CreateGameState(e)
	factory.CreateBanner(e, "clear")
	factory.CreateSolid(e, 0, testGroundY, testWorldWidth, 32)
	return e
}

func newSpritePlayer(e *ecs.ECS, x, y float64) *donburi.Entry {
	return factory.CreatePlayer(e, x, y, ebiten.NewImage(64, 104))
}

// count returns how many entries carry the component or tag.
func count(e *ecs.ECS, c interface {
	Each(donburi.World, func(*donburi.Entry))
}) int {
	n := 0
	c.Each(e.World, func(*donburi.Entry) {
		n++
	})
	return n
}

func stepFrames(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		Step(e)
	}
}

// settle lets every body fall onto the ground.
func settle(t *testing.T, e *ecs.ECS, player *donburi.Entry) {
	t.Helper()
	body := components.Player.Get(player).Body
	for i := 0; i < 240; i++ {
		Step(e)
		if body.Grounded() {
			return
		}
	}
	t.Fatal("player never landed")
}
