package systems

import (
	"image/color"

	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/internal/logger"
	"github.com/automoto/knightfall/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateTransition advances the level fade. It runs every tick, even while
// gameplay is halted, and loads the target level exactly once when the fade
// reaches full opacity.
func UpdateTransition(e *ecs.ECS) {
	transition := GetTransition(e)
	if transition == nil || !transition.Update() {
		return
	}
	if err := factory.InitializeLevel(e, transition.Target); err != nil {
		logger.Error("level load failed", zap.Int("level", transition.Target), zap.Error(err))
	}
}

// DrawTransition darkens the screen while a fade is running.
func DrawTransition(e *ecs.ECS, screen *ebiten.Image) {
	transition := GetTransition(e)
	if transition == nil || !transition.Active() {
		return
	}
	fade := color.RGBA{A: uint8(transition.Alpha)}
	vector.FillRect(screen, 0, 0, float32(config.C.Width), float32(config.C.Height), fade, false)
}
