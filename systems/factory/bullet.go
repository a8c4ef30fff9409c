package factory

import (
	"github.com/automoto/knightfall/archetypes"
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBullet spawns a bullet owned by owner. Bullets are resolved by plain
// overlap tests and are not added to the collision space.
func CreateBullet(ecs *ecs.ECS, owner donburi.Entity, x, y float64, facingRight bool) *donburi.Entry {
	bullet := archetypes.Bullet.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Combat.BulletWidth, cfg.Combat.BulletHeight, tags.ResolvBullet)
	obj.Data = bullet
	components.Object.SetValue(bullet, components.ObjectData{Object: obj})

	vx := cfg.Combat.BulletSpeed * cfg.DirectionLeft
	if facingRight {
		vx = cfg.Combat.BulletSpeed * cfg.DirectionRight
	}
	components.Bullet.SetValue(bullet, components.BulletData{
		Owner:     owner,
		VelocityX: vx,
		Damage:    cfg.Combat.BulletDamage,
	})
	return bullet
}
