// Package states defines the animation/logic state identifiers shared by every
// actor. It has no dependencies on ebiten, donburi or resolv so it can be used
// by headless tools and tests.
package states

// StateID identifies an entity state for animation and logic.
type StateID int

const (
	StateNone StateID = -1

	// Shared by every actor
	Idle StateID = iota
	Moving
	Attacking
	Hurt
	Dying

	// Player only
	JumpStart
	JumpMid
	JumpEnd
)

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Moving:    "moving",
	Attacking: "attacking",
	Hurt:      "hurt",
	Dying:     "dying",
	JumpStart: "jump_start",
	JumpMid:   "jump_mid",
	JumpEnd:   "jump_end",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsJump reports whether s is one of the player's airborne animation states.
func (s StateID) IsJump() bool {
	return s == JumpStart || s == JumpMid || s == JumpEnd
}

// StateToFileName maps a state to its sprite sheet filename prefix.
var StateToFileName = stateNames
