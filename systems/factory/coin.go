package factory

import (
	"github.com/automoto/flagpole/archetypes"
	"github.com/automoto/flagpole/components"
	cfg "github.com/automoto/flagpole/config"
	"github.com/automoto/flagpole/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCoin spawns a gravity-free coin centred on (x, y).
func CreateCoin(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)

	r := cfg.Coin.Radius
	obj := resolv.NewObject(x-r, y-r, r*2, r*2, tags.ResolvCoin)
	obj.SetShape(resolv.NewCircle(r, r, r))
	obj.Data = coin
	components.Object.SetValue(coin, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	// Bob up and down forever; only the drawing is offset.
	half := float32(cfg.Coin.BobSeconds / 2)
	amp := float32(cfg.Coin.BobAmplitude)
	bob := gween.NewSequence(
		gween.New(0, -amp, half, ease.InOutSine),
		gween.New(-amp, 0, half, ease.InOutSine),
	)
	bob.SetLoop(-1)

	components.Coin.SetValue(coin, components.CoinData{
		Radius: r,
		Bob:    bob,
	})
	components.Shape.SetValue(coin, components.ShapeData{
		Kind:  components.ShapeCircle,
		Color: cfg.Colors.Coin,
	})

	return coin
}
