package systems

import (
	"github.com/automoto/flagpole/components"
	cfg "github.com/automoto/flagpole/config"
	"github.com/automoto/flagpole/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns this frame's intent into body commands.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	input := getOrCreateInput(ecs)
	body := player.Body

	// Left wins when both directions are held.
	switch {
	case input.Left:
		body.SetVelocityX(-cfg.Player.RunSpeed)
		player.Facing = -1
	case input.Right:
		body.SetVelocityX(cfg.Player.RunSpeed)
		player.Facing = 1
	default:
		body.SetVelocityX(0)
	}

	if sprite := components.Sprite.Get(playerEntry); sprite.Image != nil {
		sprite.FlipX = player.Facing < 0
	}

	// A held touch jump stays latched until it lands a jump.
	if input.JumpRequested && body.Grounded() {
		body.Jump(cfg.Player.JumpSpeed)
		PlaySFX(ecs, cfg.SoundJump)
		consumeJump(ecs, input)
	}

	if player.InvulnFrames > 0 {
		player.InvulnFrames--
	}
}
