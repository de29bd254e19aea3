package components

import "github.com/yohamta/donburi"

// FlagData is the level-end marker. Scored only ever goes false to true.
type FlagData struct {
	X, Y   float64
	Radius float64
	Scored bool
}

var Flag = donburi.NewComponentType[FlagData]()
