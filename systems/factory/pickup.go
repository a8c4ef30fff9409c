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

// CreateItem places a health pickup inside the tile at x, y.
func CreateItem(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	item := archetypes.Item.Spawn(ecs)

	size := cfg.Combat.ItemSize
	obj := resolv.NewObject(x+cfg.Combat.ItemOffsetX, y+cfg.Combat.ItemOffsetY, size, size, tags.ResolvItem)
	obj.Data = item
	components.Object.SetValue(item, components.ObjectData{Object: obj})
	components.Item.SetValue(item, components.ItemData{Heal: cfg.Combat.ItemHeal})
	addToSpace(ecs, obj)

	return item
}

// CreateDoor places a level exit filling the tile at x, y.
func CreateDoor(ecs *ecs.ECS, x, y float64, target int) *donburi.Entry {
	door := archetypes.Door.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.World.TileWidth, cfg.World.TileHeight, tags.ResolvDoor)
	obj.Data = door
	components.Object.SetValue(door, components.ObjectData{Object: obj})
	components.Door.SetValue(door, components.DoorData{Target: target})
	addToSpace(ecs, obj)

	return door
}
