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

// CreatePlatform builds one solid tile. code picks the sprite.
func CreatePlatform(ecs *ecs.ECS, x, y float64, code int) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.World.TileWidth, cfg.World.TileHeight, tags.ResolvSolid)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	components.Platform.SetValue(platform, components.PlatformData{Code: code})
	addToSpace(ecs, obj)

	return platform
}
