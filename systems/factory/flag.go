package factory

import (
	"github.com/automoto/flagpole/archetypes"
	"github.com/automoto/flagpole/components"
	cfg "github.com/automoto/flagpole/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateFlag(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	flag := archetypes.Flag.Spawn(ecs)
	components.Flag.SetValue(flag, components.FlagData{
		X:      x,
		Y:      y,
		Radius: cfg.Flag.Radius,
	})
	return flag
}
