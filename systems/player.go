package systems

import (
	"math"

	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/internal/logger"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/automoto/knightfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdatePlayer runs one tick of player physics and the player state machine.
func UpdatePlayer(e *ecs.ECS) {
	entry, ok := playerEntry(e)
	if !ok {
		return
	}
	state := components.State.Get(entry)

	if state.Is(cfg.Dying) {
		updatePlayerDying(e, entry)
		return
	}

	player := components.Player.Get(entry)
	health := components.Health.Get(entry)
	obj := components.Object.Get(entry).Object

	player.DisplayHealth += (float64(health.Current) - player.DisplayHealth) * cfg.Player.HealthLerp
	player.DisplayHealth = gamemath.Clamp(player.DisplayHealth, 0, float64(health.Max))

	movePlayerHorizontally(obj, player, levelWidth(e))

	player.VelocityY += cfg.Player.Gravity
	obj.Y += player.VelocityY

	if obj.Y > cfg.World.DeathLineY {
		player.LastDeathX = obj.X
		player.LastDeathY = obj.Y
		enterDying(entry)
		obj.Update()
		logger.Debug("player fell", zap.Float64("x", obj.X))
		return
	}

	onPlatform := landPlayer(entry, obj, player)
	if !onPlatform && !player.Airborne {
		player.Airborne = true
		if !state.Is(cfg.Attacking) {
			setState(entry, cfg.JumpStart)
		}
	}

	advancePlayerAnimation(entry, player)
	obj.Update()
}

// movePlayerHorizontally applies the move flags. A move into a platform snaps
// to its edge and leaves facing unchanged.
func movePlayerHorizontally(obj *resolv.Object, player *components.PlayerData, maxX float64) {
	if !player.MovingLeft && !player.MovingRight {
		return
	}
	newX := obj.X
	if player.MovingLeft {
		newX = math.Max(0, obj.X-cfg.Player.MoveSpeed)
	}
	if player.MovingRight {
		newX = math.Min(maxX-obj.W, obj.X+cfg.Player.MoveSpeed)
	}

	moved := gamemath.NewRect(newX, obj.Y, obj.W, obj.H)
	if solid := firstSolid(obj, newX-obj.X, 0, moved); solid != nil {
		if player.MovingLeft {
			obj.X = solid.X + solid.W
		} else {
			obj.X = solid.X - obj.W
		}
		return
	}

	obj.X = newX
	if player.MovingLeft {
		player.FacingLeft = true
	} else {
		player.FacingLeft = false
	}
}

// landPlayer snaps the player onto a platform top when falling into it.
func landPlayer(entry *donburi.Entry, obj *resolv.Object, player *components.PlayerData) bool {
	if player.VelocityY < 0 {
		return false
	}
	check := obj.Check(0, 1, tags.ResolvSolid)
	if check == nil {
		return false
	}
	feet := obj.Y + obj.H
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if obj.X+obj.W <= solid.X || obj.X >= solid.X+solid.W {
			continue
		}
		if feet < solid.Y || feet > solid.Y+solid.H {
			continue
		}
		obj.Y = solid.Y - obj.H
		player.VelocityY = 0
		if player.Airborne {
			player.Airborne = false
			state := components.State.Get(entry)
			if state.Is(cfg.JumpStart, cfg.JumpMid) {
				setState(entry, cfg.JumpEnd)
			}
		}
		return true
	}
	return false
}

// firstSolid returns the first platform that r overlaps, using the space for
// the broadphase.
func firstSolid(obj *resolv.Object, dx, dy float64, r gamemath.Rect) *resolv.Object {
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return nil
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if r.Overlaps(gamemath.NewRect(solid.X, solid.Y, solid.W, solid.H)) {
			return solid
		}
	}
	return nil
}

func advancePlayerAnimation(entry *donburi.Entry, player *components.PlayerData) {
	state := components.State.Get(entry)
	anim := components.Animation.Get(entry).Anim

	switch state.CurrentState {
	case cfg.Attacking:
		if anim.Advance() && anim.Done() {
			if player.Airborne {
				setState(entry, cfg.JumpMid)
			} else {
				setState(entry, groundState(player))
			}
		}
	case cfg.JumpStart:
		if anim.Advance() && anim.Done() {
			setState(entry, cfg.JumpMid)
		}
	case cfg.JumpMid:
		anim.Advance()
	case cfg.JumpEnd:
		if anim.Advance() && anim.Done() {
			setState(entry, groundState(player))
		}
	default:
		if next := groundState(player); next != state.CurrentState {
			setState(entry, next)
		}
		anim.Advance()
	}
}

func groundState(player *components.PlayerData) cfg.StateID {
	if player.MovingLeft || player.MovingRight {
		return cfg.Moving
	}
	return cfg.Idle
}

// updatePlayerDying plays the dying strip and then either respawns the player
// or ends the run when no lives are left.
func updatePlayerDying(e *ecs.ECS, entry *donburi.Entry) {
	anim := components.Animation.Get(entry).Anim
	if anim.Done() || !anim.Advance() || !anim.Done() {
		return
	}

	player := components.Player.Get(entry)
	obj := components.Object.Get(entry).Object
	lives := components.Lives.Get(entry)

	player.LastDeathX = obj.X
	player.LastDeathY = obj.Y
	lives.Lives--

	if lives.Lives > 0 {
		RespawnPlayer(e, entry)
		return
	}
	if session := GetSession(e); session != nil {
		session.ShouldQuit = true
	}
	logger.Info("out of lives")
}

// RespawnPlayer places the player on top of the platform whose center is
// nearest the last death position, with full health.
func RespawnPlayer(e *ecs.ECS, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	obj := components.Object.Get(entry).Object

	x, y := player.SpawnX, player.SpawnY
	best := math.MaxFloat64
	tags.Platform.Each(e.World, func(p *donburi.Entry) {
		r := components.Object.Get(p).Rect()
		if d := math.Abs(r.CenterX() - player.LastDeathX); d < best {
			best = d
			x = r.X + (r.W-obj.W)/2
			y = r.Y - obj.H
		}
	})

	resetPlayer(entry, x, y)
	logger.Debug("player respawned",
		zap.Float64("x", x),
		zap.Float64("y", y),
		zap.Int("lives", components.Lives.Get(entry).Lives),
	)
}

// resetPlayer moves the player to x, y and clears motion, health and state.
func resetPlayer(entry *donburi.Entry, x, y float64) {
	player := components.Player.Get(entry)
	obj := components.Object.Get(entry).Object
	health := components.Health.Get(entry)

	obj.X, obj.Y = x, y
	obj.Update()

	health.Reset()
	player.DisplayHealth = float64(health.Current)
	player.VelocityY = 0
	player.Airborne = false
	player.MovingLeft = false
	player.MovingRight = false
	player.FacingLeft = false

	in := components.Input.Get(entry)
	in.Queue = in.Queue[:0]

	setState(entry, cfg.Idle)
}

// playerJump starts a jump from the ground.
func playerJump(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	state := components.State.Get(entry)
	if player.Airborne || state.CurrentState.IsJump() {
		return
	}
	player.VelocityY = cfg.Player.JumpStrength
	player.Airborne = true
	if !state.Is(cfg.Attacking) {
		setState(entry, cfg.JumpStart)
	}
}

// playerAttack starts a swing. Movement stops for the swing.
func playerAttack(entry *donburi.Entry) {
	if components.State.Get(entry).Is(cfg.Attacking) {
		return
	}
	player := components.Player.Get(entry)
	player.MovingLeft = false
	player.MovingRight = false
	setState(entry, cfg.Attacking)
}
