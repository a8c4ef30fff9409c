package systems

import (
	"math"

	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs every enemy state machine once, grouped by type in the
// configured order.
func UpdateEnemies(e *ecs.ECS) {
	var playerX float64
	hasPlayer := false
	if p, ok := playerEntry(e); ok {
		playerX = components.Object.Get(p).X
		hasPlayer = true
	}

	eachEnemyByType(e.World, func(entry *donburi.Entry, enemy *components.EnemyData) {
		switch enemy.Type.Behavior {
		case cfg.BehaviorScripted:
			updateScripted(e, entry)
		default:
			updateCombatEnemy(e, entry, playerX, hasPlayer)
		}
	})
}

// eachEnemyByType visits enemies type by type in cfg.Enemy.Order, and in
// creation order within a type.
func eachEnemyByType(w donburi.World, fn func(*donburi.Entry, *components.EnemyData)) {
	for _, name := range cfg.Enemy.Order {
		tags.Enemy.Each(w, func(entry *donburi.Entry) {
			enemy := components.Enemy.Get(entry)
			if enemy.Type == nil || enemy.Type.Name != name {
				return
			}
			fn(entry, enemy)
		})
	}
}

// updateCombatEnemy is the shared machine for patrolling enemies and the boss.
// Dying and Hurt preempt everything else; otherwise the enemy finishes its
// attack, starts a new one or patrols.
func updateCombatEnemy(e *ecs.ECS, entry *donburi.Entry, playerX float64, hasPlayer bool) {
	enemy := components.Enemy.Get(entry)
	state := components.State.Get(entry)
	anim := components.Animation.Get(entry).Anim
	obj := components.Object.Get(entry).Object
	t := enemy.Type

	switch {
	case state.Is(cfg.Dying):
		if anim.Advance() && anim.Done() {
			finishDying(entry, enemy)
		}
	case state.Is(cfg.Hurt):
		if anim.Advance() && anim.Done() {
			if t.HitThreshold > 0 && enemy.HitCount >= t.HitThreshold {
				startEnemyDying(entry, enemy)
			} else {
				setState(entry, cfg.Moving)
			}
		}
	case state.Is(cfg.Attacking):
		if anim.Advance() && anim.Done() {
			finishAttack(e, entry, enemy)
		}
	case hasPlayer && canAggro(enemy, obj.X, playerX):
		startAttack(e, entry, enemy)
	default:
		patrol(entry, enemy)
		anim.Advance()
	}

	if enemy.AttackCooldown > 0 {
		enemy.AttackCooldown--
	}

	if components.Health.Get(entry).Current <= 0 && !state.Is(cfg.Dying) {
		startEnemyDying(entry, enemy)
	}
	obj.Update()
}

// canAggro reports whether the player is close enough, the attack is off
// cooldown and the enemy faces a way it may attack from.
func canAggro(enemy *components.EnemyData, x, playerX float64) bool {
	t := enemy.Type
	if t.AggroRange <= 0 || enemy.AttackCooldown > 0 {
		return false
	}
	if t.AggroFacing == cfg.FacingLeftOnly && enemy.FacingRight {
		return false
	}
	return math.Abs(playerX-x) < t.AggroRange
}

func startAttack(e *ecs.ECS, entry *donburi.Entry, enemy *components.EnemyData) {
	nextAttackSheet(e, enemy)
	setState(entry, cfg.Attacking)

	if enemy.Type.Ranged {
		enemy.ShootTimer++
		if enemy.ShootTimer >= enemy.Type.ShootDelay && liveBullets(e.World, entry.Entity()) < enemy.Type.MaxBullets {
			enemy.ShootTimer = 0
			fireBullet(e, entry, enemy)
		}
	}
}

func finishAttack(e *ecs.ECS, entry *donburi.Entry, enemy *components.EnemyData) {
	t := enemy.Type
	if t.ShakeSheet >= 0 && enemy.AttackSheet == t.ShakeSheet {
		TriggerScreenShake(e, t.ShakeIntensity, t.ShakeDuration)
	}
	setState(entry, cfg.Moving)
}

// patrol walks toward the current patrol bound and turns around on reaching it.
func patrol(entry *donburi.Entry, enemy *components.EnemyData) {
	obj := components.Object.Get(entry).Object
	state := components.State.Get(entry)
	if !state.Is(cfg.Moving) {
		setState(entry, cfg.Moving)
	}

	if enemy.FacingRight {
		obj.X += enemy.Type.Speed
		if obj.X >= enemy.PatrolMax {
			obj.X = enemy.PatrolMax
			enemy.FacingRight = false
			turnAround(enemy)
		}
		return
	}
	obj.X -= enemy.Type.Speed
	if obj.X <= enemy.PatrolMin {
		obj.X = enemy.PatrolMin
		enemy.FacingRight = true
		turnAround(enemy)
	}
}

func startEnemyDying(entry *donburi.Entry, enemy *components.EnemyData) {
	enemy.DyingSheet = 0
	enterDying(entry)
}

// finishDying marks the enemy for removal once its last dying strip ends.
func finishDying(entry *donburi.Entry, enemy *components.EnemyData) {
	if enemy.DyingSheet+1 < enemy.Type.DyingSheets {
		nextDyingSheet(entry, enemy)
		return
	}
	enemy.ToRemove = true
}
