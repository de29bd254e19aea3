package factory

import (
	"github.com/automoto/flagpole/archetypes"
	"github.com/automoto/flagpole/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBanner adds the hidden level-complete message.
func CreateBanner(ecs *ecs.ECS, text string) *donburi.Entry {
	banner := archetypes.Banner.Spawn(ecs)
	components.Banner.SetValue(banner, components.BannerData{Text: text})
	return banner
}
