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

// CreateEnemy spawns an enemy of type t at x, y patrolling [minX, maxX].
// Enemies start facing right and walking.
func CreateEnemy(ecs *ecs.ECS, t cfg.EnemyTypeConfig, x, y, minX, maxX float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(x, y, t.Width, t.Height, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	// Each enemy keeps its own copy of the type so tables can be tuned per level.
	enemyType := t
	start := cfg.Moving
	if t.Behavior == cfg.BehaviorScripted {
		start = cfg.Idle
	}

	components.Enemy.SetValue(enemy, components.EnemyData{
		Type:        &enemyType,
		FacingRight: true,
		PatrolMin:   minX,
		PatrolMax:   maxX,
		AttackSheet: firstAttackSheet(ecs, t),
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  start,
		PreviousState: cfg.StateNone,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: t.Health,
		Max:     t.Health,
	})
	components.Animation.SetValue(enemy, NewAnimationData(t.Strips, t.Sprites, start))

	return enemy
}

// firstAttackSheet takes the next sheet from the session rotation, so every
// multi-sheet enemy built advances it just as its attacks do.
func firstAttackSheet(ecs *ecs.ECS, t cfg.EnemyTypeConfig) int {
	if t.AttackSheets <= 1 {
		return 0
	}
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return 0
	}
	session := components.Session.Get(entry)
	if session.Sheets == nil {
		return 0
	}
	return session.Sheets.NextAttack(t.AttackSheets)
}
