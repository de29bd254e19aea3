package systems

import (
	"github.com/automoto/flagpole/components"
	"github.com/yohamta/donburi/ecs"
)

// GetGameState returns the run's score and lives, or nil before the level is built.
func GetGameState(ecs *ecs.ECS) *components.GameStateData {
	entry, ok := components.GameState.First(ecs.World)
	if !ok {
		return nil
	}
	return components.GameState.Get(entry)
}
