package factory

import (
	"github.com/automoto/flagpole/archetypes"
	"github.com/automoto/flagpole/components"
	cfg "github.com/automoto/flagpole/config"
	"github.com/automoto/flagpole/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centred on (x, y). With a sprite the body
// is velocity driven; a nil sprite selects the rectangle fallback.
func CreatePlayer(ecs *ecs.ECS, x, y float64, sprite *ebiten.Image) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	var w, h float64
	if sprite != nil {
		bounds := sprite.Bounds()
		w = float64(bounds.Dx()) * cfg.Player.SpriteScale * cfg.Player.BodyWidthPct
		h = float64(bounds.Dy()) * cfg.Player.SpriteScale * cfg.Player.BodyHeightPct
	} else {
		w = cfg.Player.FallbackWidth
		h = cfg.Player.FallbackHeight
	}

	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:            true,
		BounceX:            cfg.Player.Bounce,
		BounceY:            cfg.Player.Bounce,
		MaxSpeedY:          cfg.Physics.MaxFallSpeed,
		CollideWorldBounds: true,
	})

	var body components.Body
	if sprite != nil {
		components.Sprite.SetValue(player, components.SpriteData{
			Image: sprite,
			Scale: cfg.Player.SpriteScale,
		})
		body = &components.VelocityBody{Entry: player}
	} else {
		components.Shape.SetValue(player, components.ShapeData{
			Kind:  components.ShapeRect,
			Color: cfg.Colors.Player,
		})
		body = &components.ShapeBody{
			Entry:      player,
			Step:       cfg.Player.FallbackStep,
			HopHeight:  cfg.Player.HopHeight,
			HopFrames:  cfg.Frames(cfg.Player.HopDuration),
			WorldWidth: worldWidth(ecs),
		}
	}

	components.Player.SetValue(player, components.PlayerData{
		Body:   body,
		Facing: 1,
	})
	components.Flash.SetValue(player, components.FlashData{Color: cfg.Colors.PlayerHit})

	return player
}
