package factory

import (
	"github.com/automoto/flagpole/archetypes"
	"github.com/automoto/flagpole/assets"
	"github.com/automoto/flagpole/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{CurrentLevel: level})
	return entry
}

func worldWidth(ecs *ecs.ECS) float64 {
	if entry, ok := components.Level.First(ecs.World); ok {
		if level := components.Level.Get(entry).CurrentLevel; level != nil {
			return float64(level.Width)
		}
	}
	return 0
}
