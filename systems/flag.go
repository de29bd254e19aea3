package systems

import (
	"math"

	"github.com/automoto/flagpole/components"
	cfg "github.com/automoto/flagpole/config"
	"github.com/automoto/flagpole/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFlag awards the level-clear bonus the first time the player gets
// within reach of the flag.
func UpdateFlag(ecs *ecs.ECS) {
	flagEntry, ok := tags.Flag.First(ecs.World)
	if !ok {
		return
	}
	flag := components.Flag.Get(flagEntry)
	if flag.Scored {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	px, py := components.Player.Get(playerEntry).Body.Position()
	if math.Hypot(px-flag.X, py-flag.Y) >= flag.Radius {
		return
	}

	flag.Scored = true
	if state := GetGameState(ecs); state != nil {
		state.AddScore(cfg.Score.Flag)
	}
	showBanner(ecs)
	PlaySFX(ecs, cfg.SoundClear)
}

func showBanner(ecs *ecs.ECS) {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	banner.Visible = true
	banner.Scale = 0
	banner.Tween = gween.New(0, 1, cfg.HUD.BannerSeconds, ease.OutBack)
}
