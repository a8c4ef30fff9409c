package systems

import (
	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRemovals evicts enemies whose dying animation finished and bullets
// that hit, left the level or lost their owner. It runs after all combat so
// entities that died this tick were still valid targets.
func UpdateRemovals(e *ecs.ECS) {
	var doomed []*donburi.Entry

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if components.Enemy.Get(entry).ToRemove {
			doomed = append(doomed, entry)
		}
	})
	tags.Bullet.Each(e.World, func(entry *donburi.Entry) {
		bullet := components.Bullet.Get(entry)
		if bullet.ToRemove || !ownerAlive(e.World, bullet.Owner, doomed) {
			doomed = append(doomed, entry)
		}
	})

	for _, entry := range doomed {
		removeEntry(e, entry)
	}
}

func ownerAlive(w donburi.World, owner donburi.Entity, doomed []*donburi.Entry) bool {
	if !w.Valid(owner) {
		return false
	}
	for _, d := range doomed {
		if d.Entity() == owner {
			return false
		}
	}
	return true
}

// removeEntry takes the entity out of the collision space and the world.
func removeEntry(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if obj := components.Object.Get(entry).Object; obj != nil && obj.Space != nil {
		obj.Space.Remove(obj)
	}
	e.World.Remove(entry.Entity())
}
