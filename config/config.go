package config

import (
	"image/color"

	"github.com/automoto/knightfall/assets/animations"
)

// Strip is re-exported so config tables read naturally.
type Strip = animations.Strip

// SpriteSheet describes how a state's strip is cut out of an image.
// Frames is the number of cells in the image; the rendered cell is
// frame % Frames. Name may contain a %d verb for alternate sheets.
type SpriteSheet struct {
	Name   string
	FrameW int
	FrameH int
	Frames int
}

// AttackBoxConfig places a fixed-size box beside an entity depending on facing.
// Facing right the box starts at x+OffsetRight, facing left at x-OffsetLeft.
// All values are multiplied by the owner's scale.
type AttackBoxConfig struct {
	Width       float64
	Height      float64
	OffsetRight float64
	OffsetLeft  float64
}

// Behavior selects the state machine variant for an enemy type.
type Behavior int

const (
	BehaviorPatrol Behavior = iota
	BehaviorBoss
	BehaviorScripted
)

// FacingRule restricts when an enemy may start an attack.
type FacingRule int

const (
	FacingAny FacingRule = iota
	FacingLeftOnly
)

// FlipRule decides when a sprite is mirrored horizontally.
type FlipRule int

const (
	FlipWhenFacingRight FlipRule = iota
	FlipWhenFacingRightOrAttacking
	FlipInvertedWhileAttacking
	FlipNever
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Width  float64
	Height float64

	MaxHealth     int
	StartingLives int

	MoveSpeed    float64
	Gravity      float64
	JumpStrength float64
	HealthLerp   float64 // display health smoothing per tick

	AttackBox AttackBoxConfig // Height is a fraction of body height

	Strips  map[StateID]Strip
	Sprites map[StateID]SpriteSheet
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name     string
	TileCode int
	Behavior Behavior

	// Body
	Width        float64
	Height       float64
	Scale        float64
	SpawnOffsetX float64 // applied to position and patrol bounds
	SpawnOffsetY float64

	// Movement / AI
	Speed       float64
	AggroRange  float64
	AggroFacing FacingRule

	// Attacking the player
	AttackDamage   int
	AttackCooldown int
	AttackBox      AttackBoxConfig

	// Taking hits from the player
	Health       int
	HitThreshold int // 0 disables hit-count death
	DamageTaken  int // health removed per player hit

	// Ranged
	Ranged     bool
	ShootDelay int // attack triggers per bullet
	MaxBullets int

	// Alternate sheets (boss)
	MoveSheets     int
	AttackSheets   int
	DyingSheets    int
	ShakeSheet     int // attack sheet that shakes the camera on completion, -1 = none
	ShakeIntensity float64
	ShakeDuration  int

	// Scripted NPC
	ToggleChance float64 // chance to switch idle/moving each time the loop wraps

	Strips  map[StateID]Strip
	Sprites map[StateID]SpriteSheet

	// Rendering
	RenderW       float64 // destination size; 0 = frame size times scale
	RenderH       float64
	RenderOffsetX float64
	AlignBottom   bool // scaled sprite grows upward from the unscaled frame
	Flip          FlipRule
	Fill          color.RGBA
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig
	// TileCodes maps a level tile code to the type it spawns
	TileCodes map[int]string
	// Order is the per-tick update order of enemy types
	Order []string
	// FootOffset is the body height used to stand a spawn on its platform row
	FootOffset float64
	// TallOffset is the extra lift for tall sprites (patroller, boss)
	TallOffset float64
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	BulletDamage   int
	BulletSpeed    float64
	BulletWidth    float64
	BulletHeight   float64
	BulletOffsetR  float64 // spawn x offset when firing right
	BulletOffsetL  float64 // spawn x offset when firing left
	BulletOffsetY  float64
	ItemHeal       int
	ItemOffsetX    float64
	ItemOffsetY    float64
	ItemSize       float64
	BulletSheet    string
	ItemSheet      string
	DoorSheet      string
	PlatformSheets map[int]string
}

// WorldConfig holds level geometry.
type WorldConfig struct {
	TileWidth  float64
	TileHeight float64
	Rows       int
	Cols       int
	DeathLineY float64 // falling below this kills the player

	SpawnCol     int
	SpawnRow     int
	SpawnOffsetY float64
}

type TransitionConfig struct {
	FadeSpeed int
	MaxAlpha  int
}

type ScreenShakeConfig struct {
	ProgressDivisor float64 // shake strength = intensity * remaining / divisor
	Frequency       float64
}

type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarMargin float64
	HeartSize       float64
	HeartGap        float64
	BossBarHeight   float64
	EndScreenTicks  int // how long the end banner stays up before the game closes

	HealthBarBgColor color.RGBA
	HealthBarFgColor color.RGBA
	HeartColor       color.RGBA
	BossBarColor     color.RGBA
	TextColor        color.RGBA
}

type Config struct {
	Width  int
	Height int
}

var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var World WorldConfig
var Transition TransitionConfig
var ScreenShake ScreenShakeConfig
var UI UIConfig

var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue       = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Gray       = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	DarkGray   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Purple     = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Orange     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightGreen = color.RGBA{R: 100, G: 255, B: 100, A: 255}
)

const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  1180,
		Height: 748,
	}

	World = WorldConfig{
		TileWidth:  59,
		TileHeight: 68,
		Rows:       11,
		Cols:       160,
		DeathLineY: 748,

		SpawnCol:     2,
		SpawnRow:     2,
		SpawnOffsetY: -85,
	}

	Transition = TransitionConfig{
		FadeSpeed: 5,
		MaxAlpha:  255,
	}

	ScreenShake = ScreenShakeConfig{
		ProgressDivisor: 10,
		Frequency:       1.6,
	}

	Player = PlayerConfig{
		Width:  70,
		Height: 70,

		MaxHealth:     100,
		StartingLives: 3,

		MoveSpeed:    4,
		Gravity:      0.25,
		JumpStrength: -8.3,
		HealthLerp:   0.1,

		AttackBox: AttackBoxConfig{Width: 10, Height: 0.5, OffsetRight: 5, OffsetLeft: 30},

		Strips:  playerStrips,
		Sprites: playerSprites,
	}

	Combat = CombatConfig{
		BulletDamage:  10,
		BulletSpeed:   5,
		BulletWidth:   36,
		BulletHeight:  18,
		BulletOffsetR: 64,
		BulletOffsetL: -48,
		BulletOffsetY: 16,
		ItemHeal:      10,
		ItemOffsetX:   6,
		ItemOffsetY:   15,
		ItemSize:      40,
		BulletSheet:   "bullet",
		ItemSheet:     "item",
		DoorSheet:     "door",
		PlatformSheets: map[int]string{
			1: "platform_1",
			3: "platform_3",
		},
	}

	gruntType := EnemyTypeConfig{
		Name:     "Grunt",
		TileCode: 2,
		Behavior: BehaviorPatrol,

		Width:  64,
		Height: 64,
		Scale:  1,

		Speed:       1.2,
		AggroRange:  200,
		AggroFacing: FacingLeftOnly,

		AttackDamage:   15,
		AttackCooldown: 60,
		AttackBox:      AttackBoxConfig{Width: 100, Height: 64, OffsetRight: 20, OffsetLeft: 100},

		Health:       1,
		HitThreshold: 2,

		Ranged:     true,
		ShootDelay: 1,
		MaxBullets: 10,

		ShakeSheet: -1,

		Strips:  gruntStrips,
		Sprites: gruntSprites,

		RenderW: 64,
		RenderH: 64,
		Flip:    FlipWhenFacingRight,
		Fill:    Red,
	}

	patrollerType := EnemyTypeConfig{
		Name:         "Patroller",
		TileCode:     4,
		Behavior:     BehaviorPatrol,
		Width:        64,
		Height:       64,
		Scale:        1,
		SpawnOffsetY: -10,

		Speed:       1.2,
		AggroRange:  100,
		AggroFacing: FacingLeftOnly,

		AttackDamage:   20,
		AttackCooldown: 60,
		AttackBox:      AttackBoxConfig{Width: 40, Height: 40, OffsetRight: 15, OffsetLeft: 60},

		Health:       1,
		HitThreshold: 3,

		ShakeSheet: -1,

		Strips:  patrollerStrips,
		Sprites: patrollerSprites,

		RenderW: 110,
		RenderH: 110,
		Flip:    FlipWhenFacingRightOrAttacking,
		Fill:    Orange,
	}

	oracleType := EnemyTypeConfig{
		Name:     "Oracle",
		TileCode: 5,
		Behavior: BehaviorScripted,
		Width:    64,
		Height:   64,
		Scale:    1,

		Health: 1,

		ShakeSheet:   -1,
		ToggleChance: 0.3,

		Strips:  oracleStrips,
		Sprites: oracleSprites,

		RenderW: 64,
		RenderH: 64,
		Flip:    FlipNever,
		Fill:    Green,
	}

	bossType := EnemyTypeConfig{
		Name:         "Boss",
		TileCode:     8,
		Behavior:     BehaviorBoss,
		Width:        288 * 1.5,
		Height:       118 * 1.5,
		Scale:        1.5,
		SpawnOffsetX: 150,
		SpawnOffsetY: -10,

		Speed:       1.2,
		AggroRange:  80,
		AggroFacing: FacingAny,

		AttackDamage:   20,
		AttackCooldown: 60,
		AttackBox:      AttackBoxConfig{Width: 60, Height: 60, OffsetRight: 15, OffsetLeft: 60},

		Health:       100,
		HitThreshold: 0,
		DamageTaken:  5,

		MoveSheets:     2,
		AttackSheets:   3,
		DyingSheets:    3,
		ShakeSheet:     1,
		ShakeIntensity: 10,
		ShakeDuration:  20,

		Strips:  bossStrips,
		Sprites: bossSprites,

		RenderOffsetX: -150,
		AlignBottom:   true,
		Flip:          FlipInvertedWhileAttacking,
		Fill:          Purple,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			gruntType.Name:     gruntType,
			patrollerType.Name: patrollerType,
			oracleType.Name:    oracleType,
			bossType.Name:      bossType,
		},
		TileCodes: map[int]string{
			gruntType.TileCode:     gruntType.Name,
			patrollerType.TileCode: patrollerType.Name,
			oracleType.TileCode:    oracleType.Name,
			bossType.TileCode:      bossType.Name,
		},
		Order:      []string{gruntType.Name, patrollerType.Name, oracleType.Name, bossType.Name},
		FootOffset: 64,
		TallOffset: 35,
	}

	UI = UIConfig{
		HealthBarWidth:  160,
		HealthBarHeight: 20,
		HealthBarMargin: 10,
		HeartSize:       30,
		HeartGap:        10,
		BossBarHeight:   20,
		EndScreenTicks:  180,

		HealthBarBgColor: Gray,
		HealthBarFgColor: Red,
		HeartColor:       Red,
		BossBarColor:     Red,
		TextColor:        White,
	}
}

// TypeForTile returns the enemy type spawned by a tile code.
func TypeForTile(code int) (EnemyTypeConfig, bool) {
	name, ok := Enemy.TileCodes[code]
	if !ok {
		return EnemyTypeConfig{}, false
	}
	t, ok := Enemy.Types[name]
	return t, ok
}
