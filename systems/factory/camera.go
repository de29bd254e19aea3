package factory

import (
	"github.com/automoto/flagpole/archetypes"
	"github.com/automoto/flagpole/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
