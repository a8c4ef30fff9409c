package systems

import (
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/internal/logger"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// updateScripted animates the oracle in place. Each time its strip wraps back
// to frame 0 it may swap between idle and moving. Once struck it loops the
// hurt strip forever.
func updateScripted(e *ecs.ECS, entry *donburi.Entry) {
	enemy := components.Enemy.Get(entry)
	state := components.State.Get(entry)
	anim := components.Animation.Get(entry).Anim

	if enemy.Hit {
		anim.Advance()
		return
	}
	if !anim.Advance() || anim.Frame() != 0 {
		return
	}

	session := GetSession(e)
	if session == nil || session.Rand == nil {
		return
	}
	if session.Rand.Float64() >= enemy.Type.ToggleChance {
		return
	}
	if state.Is(cfg.Moving) {
		setState(entry, cfg.Idle)
	} else {
		setState(entry, cfg.Moving)
	}
}

// strikeScripted records the hit on a scripted NPC and ends the run in victory.
func strikeScripted(e *ecs.ECS, entry *donburi.Entry) {
	enemy := components.Enemy.Get(entry)
	if enemy.Hit {
		return
	}
	enemy.Hit = true
	setState(entry, cfg.Hurt)
	if session := GetSession(e); session != nil {
		session.Victory = true
	}
	logger.Info("oracle struck", zap.Float64("x", components.Object.Get(entry).X))
}
