package factory

import (
	"github.com/automoto/flagpole/archetypes"
	"github.com/automoto/flagpole/components"
	cfg "github.com/automoto/flagpole/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateGameState(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.GameState.Spawn(ecs)
	components.GameState.SetValue(entry, components.NewGameState(cfg.Player.StartingLives))
	return entry
}
