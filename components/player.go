package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	Body         Body
	Facing       int // -1 left, +1 right
	InvulnFrames int
}

var Player = donburi.NewComponentType[PlayerData]()
