package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Bullet   = donburi.NewTag().SetName("Bullet")
	Item     = donburi.NewTag().SetName("Item")
	Door     = donburi.NewTag().SetName("Door")
)

// Resolv tags for broadphase queries
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvBullet = "Bullet"
	ResolvItem   = "item"
	ResolvDoor   = "door"
)
