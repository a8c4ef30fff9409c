package systems

import (
	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/internal/logger"
	"github.com/automoto/knightfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdatePickups collects items the player touches and starts the level
// transition when the player reaches a door.
func UpdatePickups(e *ecs.ECS) {
	player, ok := playerEntry(e)
	if !ok {
		return
	}
	body := components.Object.Get(player).Rect()
	health := components.Health.Get(player)

	tags.Item.Each(e.World, func(entry *donburi.Entry) {
		item := components.Item.Get(entry)
		if item.Collected || !body.Overlaps(components.Object.Get(entry).Rect()) {
			return
		}
		item.Collected = true
		health.Heal(item.Heal)
		logger.Debug("item collected", zap.Int("health", health.Current))
	})

	transition := GetTransition(e)
	if transition == nil {
		return
	}
	for entry := range tags.Door.Iter(e.World) {
		if !body.Overlaps(components.Object.Get(entry).Rect()) {
			continue
		}
		target := components.Door.Get(entry).Target
		if !transition.Active() {
			transition.Start(target)
			logger.Debug("door reached", zap.Int("target", target))
		}
		break
	}
}
