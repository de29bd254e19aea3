package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Coin   = donburi.NewTag().SetName("Coin")
	Solid  = donburi.NewTag().SetName("Solid")
	Flag   = donburi.NewTag().SetName("Flag")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvCoin   = "coin"
)
