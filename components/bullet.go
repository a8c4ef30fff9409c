package components

import "github.com/yohamta/donburi"

// BulletData belongs to the enemy that fired it. It counts toward that
// enemy's live-bullet cap and is swept together with it.
type BulletData struct {
	Owner     donburi.Entity
	VelocityX float64
	Damage    int
	ToRemove  bool
}

var Bullet = donburi.NewComponentType[BulletData]()
