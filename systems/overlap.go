package systems

import (
	"math"

	"github.com/automoto/flagpole/components"
	cfg "github.com/automoto/flagpole/config"
	"github.com/automoto/flagpole/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OverlapQuery reports the coins and enemies the player currently overlaps.
type OverlapQuery func(ecs *ecs.ECS, player *donburi.Entry) (coins, enemies []*donburi.Entry)

// UpdateOverlaps dispatches player overlaps found in the collision space.
func UpdateOverlaps(ecs *ecs.ECS) {
	OverlapSystem(SpaceOverlaps)(ecs)
}

// OverlapSystem builds an overlap dispatcher around query. Handlers run after
// the query returns, so removals never happen mid-iteration.
func OverlapSystem(query OverlapQuery) ecs.System {
	return func(ecs *ecs.ECS) {
		player, ok := tags.Player.First(ecs.World)
		if !ok {
			return
		}

		coins, enemies := query(ecs, player)
		for _, coin := range coins {
			CollectCoin(ecs, coin)
		}
		for _, enemy := range enemies {
			TouchEnemy(ecs, player, enemy)
		}
	}
}

// SpaceOverlaps asks the resolv space for neighbours and confirms each one
// against its real shape: circles for coins, rectangles for enemies.
func SpaceOverlaps(_ *ecs.ECS, player *donburi.Entry) (coins, enemies []*donburi.Entry) {
	obj := components.Object.Get(player).Object

	check := obj.Check(0, 0, tags.ResolvCoin, tags.ResolvEnemy)
	if check == nil {
		return nil, nil
	}

	for _, other := range check.Objects {
		entry, ok := other.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		switch {
		case other.HasTags(tags.ResolvCoin):
			r := components.Coin.Get(entry).Radius
			if circleOverlapsRect(other.X+r, other.Y+r, r, obj) {
				coins = append(coins, entry)
			}
		case other.HasTags(tags.ResolvEnemy):
			if components.Overlapping(obj, other, 0, 0) {
				enemies = append(enemies, entry)
			}
		}
	}
	return coins, enemies
}

func circleOverlapsRect(cx, cy, r float64, rect *resolv.Object) bool {
	nx := clamp(cx, rect.X, rect.X+rect.W)
	ny := clamp(cy, rect.Y, rect.Y+rect.H)
	return math.Hypot(cx-nx, cy-ny) < r
}

// CollectCoin removes the coin and awards it. A coin already removed is ignored.
func CollectCoin(ecs *ecs.ECS, coin *donburi.Entry) {
	if !coin.Valid() {
		return
	}
	removeEntity(ecs, coin)

	if state := GetGameState(ecs); state != nil {
		state.AddScore(cfg.Score.Coin)
	}
	PlaySFX(ecs, cfg.SoundCoin)
}

// TouchEnemy resolves one player/enemy contact as a stomp or a hit.
func TouchEnemy(ecs *ecs.ECS, player, enemy *donburi.Entry) {
	if !enemy.Valid() || !player.Valid() {
		return
	}
	playerData := components.Player.Get(player)
	body := playerData.Body
	state := GetGameState(ecs)

	if body.VelocityY() > cfg.Player.StompThreshold {
		removeEntity(ecs, enemy)
		body.SetVelocityY(cfg.Player.StompSpeed)
		if state != nil {
			state.AddScore(cfg.Score.Stomp)
		}
		PlaySFX(ecs, cfg.SoundStomp)
		return
	}

	if playerData.InvulnFrames > 0 {
		return
	}
	playerData.InvulnFrames = cfg.Player.InvulnFrames
	TriggerDamageFlash(player)
	PlaySFX(ecs, cfg.SoundHurt)

	if state != nil {
		state.Hit()
	}
}

// removeEntity drops the entry and its collider from the space.
func removeEntity(ecs *ecs.ECS, entry *donburi.Entry) {
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry).Object
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			components.Space.Get(spaceEntry).Remove(obj)
		}
	}
	ecs.World.Remove(entry.Entity())
}
