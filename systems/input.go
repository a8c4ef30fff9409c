package systems

import (
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// commandActions is polled in order, so commands from keys pressed on the
// same tick are queued movement first and attack last.
var commandActions = []struct {
	action cfg.ActionID
	kind   components.CommandKind
}{
	{cfg.ActionMoveLeft, components.CommandMoveLeft},
	{cfg.ActionMoveRight, components.CommandMoveRight},
	{cfg.ActionJump, components.CommandJump},
	{cfg.ActionAttack, components.CommandAttack},
}

// PollInput turns key and button edges into player commands and handles the
// front-end toggles. Must run BEFORE UpdateCommands in the system order.
func PollInput(e *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	if player, ok := playerEntry(e); ok {
		in := components.Input.Get(player)
		for _, a := range commandActions {
			binding := cfg.Input.Bindings[a.action]
			if justPressed(binding) {
				in.Push(components.Command{Kind: a.kind, Pressed: true})
			}
			if justReleased(binding) {
				in.Push(components.Command{Kind: a.kind, Pressed: false})
			}
		}
	}

	settingsEntry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(settingsEntry)
	changed := false
	if justPressed(cfg.Input.Bindings[cfg.ActionToggleHitboxes]) {
		settings.ShowHitboxes = !settings.ShowHitboxes
		changed = true
	}
	if justPressed(cfg.Input.Bindings[cfg.ActionToggleFullscreen]) {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		changed = true
	}
	if changed {
		SaveCurrentSettings(settings)
	}
	if justPressed(cfg.Input.Bindings[cfg.ActionQuit]) {
		if session := GetSession(e); session != nil {
			session.Exit = true
		}
	}
}

func justPressed(binding cfg.InputBinding) bool {
	for _, key := range binding.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

func justReleased(binding cfg.InputBinding) bool {
	for _, key := range binding.Keys {
		if inpututil.IsKeyJustReleased(key) {
			return true
		}
	}
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustReleased(id, btn) {
				return true
			}
		}
	}
	return false
}

// UpdateCommands drains the player's command queue. Presses are ignored while
// the player is dying, a transition is fading or the run is over; releases
// always apply so no move flag is left stuck.
func UpdateCommands(e *ecs.ECS) {
	player, ok := playerEntry(e)
	if !ok {
		return
	}
	in := components.Input.Get(player)
	if len(in.Queue) == 0 {
		return
	}
	blocked := GameplayHalted(e) || components.State.Get(player).Is(cfg.Dying)
	data := components.Player.Get(player)

	for _, c := range in.Queue {
		if !c.Pressed {
			switch c.Kind {
			case components.CommandMoveLeft:
				data.MovingLeft = false
			case components.CommandMoveRight:
				data.MovingRight = false
			}
			continue
		}
		if blocked {
			continue
		}
		switch c.Kind {
		case components.CommandMoveLeft:
			data.MovingLeft = true
		case components.CommandMoveRight:
			data.MovingRight = true
		case components.CommandJump:
			playerJump(player)
		case components.CommandAttack:
			playerAttack(player)
		}
	}
	in.Queue = in.Queue[:0]
}
