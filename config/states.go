package config

import "github.com/automoto/knightfall/shared/states"

// Type aliases so gameplay code can keep using config.StateID.
type StateID = states.StateID

const (
	StateNone = states.StateNone

	Idle      = states.Idle
	Moving    = states.Moving
	Attacking = states.Attacking
	Hurt      = states.Hurt
	Dying     = states.Dying
	JumpStart = states.JumpStart
	JumpMid   = states.JumpMid
	JumpEnd   = states.JumpEnd
)

// Re-export the map (same reference, no copy).
var StateToFileName = states.StateToFileName
