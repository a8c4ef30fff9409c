package systems

import (
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Alternate sheet handling. Only types with more than one sheet for a state
// are affected; for everything else these are no-ops.

// turnAround switches to the next move sheet when the patrol direction flips.
func turnAround(enemy *components.EnemyData) {
	if enemy.Type.MoveSheets > 1 {
		enemy.MoveSheet = (enemy.MoveSheet + 1) % enemy.Type.MoveSheets
	}
}

// nextAttackSheet picks the attack sheet from the session-wide rotation so
// consecutive attacks, across bosses and level reloads, never repeat a sheet.
func nextAttackSheet(e *ecs.ECS, enemy *components.EnemyData) {
	n := enemy.Type.AttackSheets
	if n <= 1 {
		return
	}
	if session := GetSession(e); session != nil && session.Sheets != nil {
		enemy.AttackSheet = session.Sheets.NextAttack(n)
		return
	}
	enemy.AttackSheet = (enemy.AttackSheet + 1) % n
}

// nextDyingSheet plays the following dying sheet from its first frame.
func nextDyingSheet(entry *donburi.Entry, enemy *components.EnemyData) {
	enemy.DyingSheet++
	components.Animation.Get(entry).Anim.Restart()
}

// sheetIndex returns which alternate sheet the enemy's current state draws from.
func sheetIndex(enemy *components.EnemyData, state *components.StateData) int {
	switch {
	case state.Is(cfg.Dying):
		return enemy.DyingSheet
	case state.Is(cfg.Attacking):
		return enemy.AttackSheet
	case state.Is(cfg.Moving):
		return enemy.MoveSheet
	}
	return 0
}
