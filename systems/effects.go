package systems

import (
	"github.com/automoto/flagpole/components"
	cfg "github.com/automoto/flagpole/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const flashRevertTimer = "flash-revert"

// UpdateEffects advances purely visual tweens.
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(cfg.DeltaTime())

	components.Coin.Each(ecs.World, func(e *donburi.Entry) {
		coin := components.Coin.Get(e)
		if coin.Bob == nil {
			return
		}
		offset, _, _ := coin.Bob.Update(dt)
		coin.OffsetY = float64(offset)
	})

	if entry, ok := components.Banner.First(ecs.World); ok {
		banner := components.Banner.Get(entry)
		if banner.Visible && banner.Tween != nil {
			scale, finished := banner.Tween.Update(dt)
			banner.Scale = float64(scale)
			if finished {
				banner.Tween = nil
				banner.Scale = 1
			}
		}
	}
}

// TriggerDamageFlash tints the entity and schedules the revert. A flash
// already showing is extended rather than stacked.
func TriggerDamageFlash(entry *donburi.Entry) {
	if !entry.HasComponent(components.Flash) || !entry.HasComponent(components.Timers) {
		return
	}
	components.Flash.Get(entry).Active = true
	components.Timers.Get(entry).Schedule(flashRevertTimer, cfg.Frames(cfg.Player.FlashDuration), func() {
		if entry.Valid() {
			components.Flash.Get(entry).Active = false
		}
	})
}
