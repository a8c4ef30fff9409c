package systems

import (
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/internal/logger"
	"github.com/automoto/knightfall/systems/factory"
	"github.com/automoto/knightfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateBullets moves every bullet once and resolves hits on the player.
// Bullet hits are not cooldown gated: each bullet can land once.
func UpdateBullets(e *ecs.ECS) {
	maxX := levelWidth(e)
	player, hasPlayer := playerEntry(e)

	tags.Bullet.Each(e.World, func(entry *donburi.Entry) {
		bullet := components.Bullet.Get(entry)
		if bullet.ToRemove {
			return
		}
		obj := components.Object.Get(entry)
		obj.X += bullet.VelocityX

		if obj.X < -obj.W || obj.X > maxX+obj.W {
			bullet.ToRemove = true
			return
		}
		if !hasPlayer || !obj.Rect().Overlaps(components.Object.Get(player).Rect()) {
			return
		}

		bullet.ToRemove = true
		DamagePlayer(player, bullet.Damage)
		logger.Debug("bullet hit player",
			zap.Int("health", components.Health.Get(player).Current),
		)
	})
}

// fireBullet spawns a bullet in front of a ranged enemy, flying the way it faces.
func fireBullet(e *ecs.ECS, entry *donburi.Entry, enemy *components.EnemyData) {
	obj := components.Object.Get(entry)
	x := obj.X + cfg.Combat.BulletOffsetL
	if enemy.FacingRight {
		x = obj.X + cfg.Combat.BulletOffsetR
	}
	factory.CreateBullet(e, entry.Entity(), x, obj.Y+cfg.Combat.BulletOffsetY, enemy.FacingRight)
}

// liveBullets counts the bullets owner has in flight.
func liveBullets(w donburi.World, owner donburi.Entity) int {
	n := 0
	tags.Bullet.Each(w, func(entry *donburi.Entry) {
		b := components.Bullet.Get(entry)
		if b.Owner == owner && !b.ToRemove {
			n++
		}
	})
	return n
}
