package config

import "github.com/automoto/knightfall/assets/animations"

const (
	loop     = animations.Loop
	clamp    = animations.Clamp
	terminal = animations.Terminal
)

// Strips hold frame count, delay and wrap policy per state. Sprites say where
// each state's frames live in an image. Frames in a SpriteSheet may differ
// from the strip: the renderer wraps the strip frame into the sheet.

var playerStrips = map[StateID]Strip{
	Idle:      {Frames: 4, Delay: 4, Wrap: loop},
	Moving:    {Frames: 8, Delay: 4, Wrap: loop},
	Attacking: {Frames: 8, Delay: 4, Wrap: terminal},
	JumpStart: {Frames: 4, Delay: 4, Wrap: terminal},
	JumpMid:   {Frames: 8, Delay: 4, Wrap: clamp},
	JumpEnd:   {Frames: 4, Delay: 4, Wrap: terminal},
	Dying:     {Frames: 8, Delay: 6, Wrap: terminal},
}

var playerSprites = map[StateID]SpriteSheet{
	Idle:      {Name: "player_idle", FrameW: 64, FrameH: 64, Frames: 4},
	Moving:    {Name: "player_run", FrameW: 80, FrameH: 66, Frames: 8},
	Attacking: {Name: "player_attack", FrameW: 96, FrameH: 64, Frames: 8},
	JumpStart: {Name: "player_jump_start", FrameW: 64, FrameH: 64, Frames: 4},
	JumpMid:   {Name: "player_jump_mid", FrameW: 64, FrameH: 60, Frames: 8},
	JumpEnd:   {Name: "player_jump_end", FrameW: 64, FrameH: 64, Frames: 3},
	Dying:     {Name: "player_dead", FrameW: 80, FrameH: 47, Frames: 8},
}

var gruntStrips = map[StateID]Strip{
	Idle:      {Frames: 4, Delay: 8, Wrap: loop},
	Moving:    {Frames: 4, Delay: 8, Wrap: loop},
	Attacking: {Frames: 8, Delay: 6, Wrap: terminal},
	Hurt:      {Frames: 4, Delay: 4, Wrap: terminal},
	Dying:     {Frames: 6, Delay: 4, Wrap: terminal},
}

var gruntSprites = map[StateID]SpriteSheet{
	Idle:      {Name: "grunt_move", FrameW: 81, FrameH: 71, Frames: 4},
	Moving:    {Name: "grunt_move", FrameW: 81, FrameH: 71, Frames: 4},
	Attacking: {Name: "grunt_attack", FrameW: 81, FrameH: 71, Frames: 8},
	Hurt:      {Name: "grunt_hurt", FrameW: 81, FrameH: 71, Frames: 4},
	Dying:     {Name: "grunt_dying", FrameW: 81, FrameH: 71, Frames: 6},
}

var patrollerStrips = map[StateID]Strip{
	Idle:      {Frames: 8, Delay: 8, Wrap: loop},
	Moving:    {Frames: 10, Delay: 8, Wrap: loop},
	Attacking: {Frames: 11, Delay: 8, Wrap: terminal},
	Hurt:      {Frames: 4, Delay: 8, Wrap: terminal},
	Dying:     {Frames: 12, Delay: 8, Wrap: terminal},
}

var patrollerSprites = map[StateID]SpriteSheet{
	Idle:      {Name: "patroller_idle", FrameW: 90, FrameH: 64, Frames: 8},
	Moving:    {Name: "patroller_move", FrameW: 90, FrameH: 64, Frames: 10},
	Attacking: {Name: "patroller_attack", FrameW: 90, FrameH: 64, Frames: 11},
	Hurt:      {Name: "patroller_hurt", FrameW: 90, FrameH: 64, Frames: 4},
	Dying:     {Name: "patroller_dying", FrameW: 90, FrameH: 64, Frames: 12},
}

// The oracle's Hurt strip is the looping post-hit animation.
var oracleStrips = map[StateID]Strip{
	Idle:   {Frames: 10, Delay: 8, Wrap: loop},
	Moving: {Frames: 6, Delay: 8, Wrap: loop},
	Hurt:   {Frames: 4, Delay: 8, Wrap: loop},
}

var oracleSprites = map[StateID]SpriteSheet{
	Idle:   {Name: "oracle_idle", FrameW: 48, FrameH: 35, Frames: 10},
	Moving: {Name: "oracle_move", FrameW: 48, FrameH: 33, Frames: 6},
	Hurt:   {Name: "player_idle", FrameW: 64, FrameH: 64, Frames: 4},
}

var bossStrips = map[StateID]Strip{
	Idle:      {Frames: 6, Delay: 8, Wrap: loop},
	Moving:    {Frames: 6, Delay: 8, Wrap: loop},
	Attacking: {Frames: 5, Delay: 8, Wrap: terminal},
	Hurt:      {Frames: 5, Delay: 8, Wrap: terminal},
	Dying:     {Frames: 6, Delay: 9, Wrap: terminal},
}

// Names with %d select one of several alternate sheets, numbered from 1.
var bossSprites = map[StateID]SpriteSheet{
	Idle:      {Name: "boss_idle", FrameW: 292, FrameH: 121, Frames: 6},
	Moving:    {Name: "boss_move%d", FrameW: 288, FrameH: 118, Frames: 6},
	Attacking: {Name: "boss_attack%d", FrameW: 290, FrameH: 120, Frames: 5},
	Hurt:      {Name: "boss_hurt", FrameW: 293, FrameH: 121, Frames: 5},
	Dying:     {Name: "boss_dying%d", FrameW: 292, FrameH: 122, Frames: 6},
}
