package systems

import (
	"github.com/automoto/flagpole/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimers advances every entity's delayed calls by one frame.
func UpdateTimers(ecs *ecs.ECS) {
	var due []*components.TimersData
	components.Timers.Each(ecs.World, func(e *donburi.Entry) {
		due = append(due, components.Timers.Get(e))
	})
	// Ticked outside Each so calls are free to change the world.
	for _, timers := range due {
		timers.Tick()
	}
}
