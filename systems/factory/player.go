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

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		DisplayHealth: float64(cfg.Player.MaxHealth),
		SpawnX:        x,
		SpawnY:        y,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxHealth,
		Max:     cfg.Player.MaxHealth,
	})
	components.Lives.SetValue(player, components.LivesData{
		Lives:    cfg.Player.StartingLives,
		MaxLives: cfg.Player.StartingLives,
	})
	components.Animation.SetValue(player, NewAnimationData(cfg.Player.Strips, cfg.Player.Sprites, cfg.Idle))

	return player
}

// PlacePlayer puts an existing player at a level's spawn point with full
// health, a fresh set of lives and no motion.
func PlacePlayer(player *donburi.Entry, x, y float64) {
	obj := components.Object.Get(player).Object
	obj.X, obj.Y = x, y
	obj.Update()

	health := components.Health.Get(player)
	health.Reset()

	lives := components.Lives.Get(player)
	lives.Lives = lives.MaxLives

	components.Player.SetValue(player, components.PlayerData{
		DisplayHealth: float64(health.Current),
		SpawnX:        x,
		SpawnY:        y,
	})
	components.Input.Get(player).Queue = nil

	state := components.State.Get(player)
	state.Set(cfg.Idle)
	components.Animation.Get(player).Play(cfg.Idle)
}
