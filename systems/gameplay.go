package systems

import "github.com/yohamta/donburi/ecs"

// Gameplay lists the simulation systems in run order. Device input, pause
// and audio are registered around them by the scene.
var Gameplay = []ecs.System{
	UpdatePlayer,
	UpdateEnemies,
	UpdatePhysics,
	UpdateCollisions,
	UpdateOverlaps,
	UpdateFlag,
	UpdateTimers,
	UpdateEffects,
	UpdateCamera,
}

// Step runs one frame of the simulation directly, skipping pause checks.
func Step(e *ecs.ECS) {
	for _, system := range Gameplay {
		system(e)
	}
}
