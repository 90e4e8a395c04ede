package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Platform   = donburi.NewTag().SetName("Platform")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Coin       = donburi.NewTag().SetName("Coin")
	Particle   = donburi.NewTag().SetName("Particle")
	FinishLine = donburi.NewTag().SetName("FinishLine")
)

// Resolv tags for collision queries
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvCoin       = "coin"
	ResolvFinishLine = "finishline"
)
