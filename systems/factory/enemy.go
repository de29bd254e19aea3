package factory

import (
	"github.com/automoto/flagpole/archetypes"
	"github.com/automoto/flagpole/assets/animations"
	"github.com/automoto/flagpole/components"
	cfg "github.com/automoto/flagpole/config"
	"github.com/automoto/flagpole/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a walker centred on (x, y+SpawnOffsetY) patrolling
// [minX, maxX]. The sheet is optional; without it the enemy is a plain square.
func CreateEnemy(ecs *ecs.ECS, x, y, minX, maxX float64, sheet *ebiten.Image, sheetPath string) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	w, h := cfg.Enemy.Width, cfg.Enemy.Height
	cy := y + cfg.Enemy.SpawnOffsetY

	obj := resolv.NewObject(x-w/2, cy-h/2, w, h, tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		MinX:  minX,
		MaxX:  maxX,
		Speed: cfg.Enemy.PatrolSpeed,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		VelX:               cfg.Enemy.PatrolSpeed,
		Gravity:            true,
		BounceX:            cfg.Enemy.BounceX,
		MaxSpeedX:          cfg.Enemy.MaxSpeedX,
		MaxSpeedY:          cfg.Enemy.MaxSpeedY,
		CollideWorldBounds: true,
	})
	components.Shape.SetValue(enemy, components.ShapeData{
		Kind:  components.ShapeRect,
		Color: cfg.Colors.Enemy,
	})

	anim := components.AnimationData{
		FrameWidth:  cfg.Enemy.FrameWidth,
		FrameHeight: cfg.Enemy.FrameHeight,
	}
	if sheet != nil {
		anim.Sheet = sheet
		anim.SheetPath = sheetPath
		anim.Current = animations.New(1, 3, 6, cfg.C.TPS, true)
	}
	components.Animation.SetValue(enemy, anim)

	return enemy
}
