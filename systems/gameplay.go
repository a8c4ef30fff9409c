package systems

import (
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WithGameplayChecks wraps a system to skip execution while a level
// transition is fading or after the run has ended.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GameplayHalted(e) {
			return
		}
		system(e)
	}
}

// GameplayHalted reports whether the simulation steps must be skipped this tick.
func GameplayHalted(e *ecs.ECS) bool {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return false
	}
	if components.Session.Get(entry).Ended() {
		return true
	}
	return components.Transition.Get(entry).Active()
}

// UpdateSession counts ticks and how long the run has been over.
func UpdateSession(e *ecs.ECS) {
	session := GetSession(e)
	if session == nil {
		return
	}
	session.Tick++
	if session.Ended() {
		session.EndedTicks++
	}
}

// Finished reports whether the game should close: the player asked to leave,
// or the end banner has been shown long enough.
func Finished(e *ecs.ECS) bool {
	session := GetSession(e)
	if session == nil {
		return false
	}
	return session.Exit || (session.Ended() && session.EndedTicks >= cfg.UI.EndScreenTicks)
}

// GetSession returns the run-wide session, or nil before the scene is built.
func GetSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

// GetTransition returns the level fade state, or nil before the scene is built.
func GetTransition(e *ecs.ECS) *components.TransitionData {
	entry, ok := components.Transition.First(e.World)
	if !ok {
		return nil
	}
	return components.Transition.Get(entry)
}

// levelWidth is the width in pixels of the level being played.
func levelWidth(e *ecs.ECS) float64 {
	if entry, ok := components.Level.First(e.World); ok {
		if w := components.Level.Get(entry).Width; w > 0 {
			return w
		}
	}
	return float64(cfg.World.Cols) * cfg.World.TileWidth
}

func playerEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(e.World)
}

// setState enters next and restarts its animation from frame 0, even when
// next is already the current state.
func setState(entry *donburi.Entry, next cfg.StateID) {
	components.State.Get(entry).Set(next)
	components.Animation.Get(entry).Play(next)
}

// enterDying starts the dying animation unless it is already playing.
func enterDying(entry *donburi.Entry) bool {
	if components.State.Get(entry).Is(cfg.Dying) {
		return false
	}
	setState(entry, cfg.Dying)
	return true
}
