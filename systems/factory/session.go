package factory

import (
	"math/rand/v2"

	"github.com/automoto/knightfall/archetypes"
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the run-wide context: RNG, boss sheet rotation, the
// level fade and the front-end toggles. A fixed seed replays a run exactly.
func CreateSession(ecs *ecs.ECS, seed uint64, settings components.SettingsData) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	components.Session.SetValue(session, components.SessionData{
		Sheets: components.NewSheetRotation(),
		Rand:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	})
	components.Transition.SetValue(session, components.NewTransition(cfg.Transition.FadeSpeed, cfg.Transition.MaxAlpha))
	components.Settings.SetValue(session, settings)

	return session
}
