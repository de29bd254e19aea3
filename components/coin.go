package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type CoinData struct {
	Radius  float64
	Bob     *gween.Sequence
	OffsetY float64 // visual only, the collider stays put
}

var Coin = donburi.NewComponentType[CoinData]()
