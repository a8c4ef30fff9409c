package systems

import (
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PlayerAttackBox returns the thin strip beside the player's facing edge. It
// only exists while the player is attacking.
func PlayerAttackBox(entry *donburi.Entry) (gamemath.Rect, bool) {
	if !components.State.Get(entry).Is(cfg.Attacking) {
		return gamemath.Rect{}, false
	}
	body := components.Object.Get(entry).Rect()
	box := cfg.Player.AttackBox

	x := body.Right() + box.OffsetRight
	if components.Player.Get(entry).FacingLeft {
		x = body.X - box.OffsetLeft
	}
	return gamemath.NewRect(x, body.Y, box.Width, body.H*box.Height), true
}

// EnemyAttackBox returns the fixed box an enemy attacks through, placed by
// facing and scaled with the enemy.
func EnemyAttackBox(entry *donburi.Entry) gamemath.Rect {
	enemy := components.Enemy.Get(entry)
	body := components.Object.Get(entry).Rect()
	return enemyAttackBox(enemy.Type, body.X, body.Y, enemy.FacingRight)
}

func enemyAttackBox(t *cfg.EnemyTypeConfig, x, y float64, facingRight bool) gamemath.Rect {
	s := t.Scale
	if s == 0 {
		s = 1
	}
	box := t.AttackBox
	if facingRight {
		x += box.OffsetRight * s
	} else {
		x -= box.OffsetLeft * s
	}
	return gamemath.NewRect(x, y, box.Width*s, box.Height*s)
}
