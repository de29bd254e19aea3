package components

import "github.com/yohamta/donburi"

// EnemyData holds a patrol range fixed at spawn.
type EnemyData struct {
	MinX, MaxX float64
	Speed      float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
