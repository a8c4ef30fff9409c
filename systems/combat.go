package systems

import (
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/internal/logger"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdatePlayerAttack resolves the player's swing against every enemy body.
// Targets already dying or flinching are skipped, so one swing cannot land
// on a target that is still reacting to it.
func UpdatePlayerAttack(e *ecs.ECS) {
	player, ok := playerEntry(e)
	if !ok {
		return
	}
	box, ok := PlayerAttackBox(player)
	if !ok {
		return
	}

	eachEnemyByType(e.World, func(entry *donburi.Entry, enemy *components.EnemyData) {
		if !box.Overlaps(components.Object.Get(entry).Rect()) {
			return
		}
		if enemy.Type.Behavior == cfg.BehaviorScripted {
			strikeScripted(e, entry)
			return
		}
		if components.State.Get(entry).Is(cfg.Dying, cfg.Hurt) {
			return
		}
		hitEnemy(entry, enemy)
	})
}

// hitEnemy applies one player hit. Reaching the hit threshold or running out
// of health goes straight to Dying, anything else to Hurt.
func hitEnemy(entry *donburi.Entry, enemy *components.EnemyData) {
	health := components.Health.Get(entry)
	health.Damage(enemy.Type.DamageTaken)
	enemy.HitCount++

	t := enemy.Type
	if (t.HitThreshold > 0 && enemy.HitCount >= t.HitThreshold) || health.Current <= 0 {
		startEnemyDying(entry, enemy)
	} else {
		setState(entry, cfg.Hurt)
	}
	logger.Debug("player hit enemy",
		zap.String("type", t.Name),
		zap.Int("hits", enemy.HitCount),
		zap.Int("health", health.Current),
	)
}

// UpdateEnemyAttacks resolves enemy swings against the player body. An
// attack lands at most once per cooldown.
func UpdateEnemyAttacks(e *ecs.ECS) {
	player, ok := playerEntry(e)
	if !ok {
		return
	}
	body := components.Object.Get(player).Rect()

	eachEnemyByType(e.World, func(entry *donburi.Entry, enemy *components.EnemyData) {
		if enemy.Type.AttackDamage <= 0 || enemy.AttackCooldown > 0 {
			return
		}
		if !components.State.Get(entry).Is(cfg.Attacking) {
			return
		}
		if !EnemyAttackBox(entry).Overlaps(body) {
			return
		}
		enemy.AttackCooldown = enemy.Type.AttackCooldown
		DamagePlayer(player, enemy.Type.AttackDamage)
		logger.Debug("enemy hit player",
			zap.String("type", enemy.Type.Name),
			zap.Int("health", components.Health.Get(player).Current),
		)
	})
}

// DamagePlayer removes health, clamped at zero, and starts the dying
// animation when none is left.
func DamagePlayer(player *donburi.Entry, amount int) {
	health := components.Health.Get(player)
	health.Damage(amount)
	if health.Current <= 0 {
		enterDying(player)
	}
}
