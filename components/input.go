package components

import (
	"github.com/yohamta/donburi"
)

type CommandKind int

const (
	CommandMoveLeft CommandKind = iota
	CommandMoveRight
	CommandJump
	CommandAttack
)

func (k CommandKind) String() string {
	switch k {
	case CommandMoveLeft:
		return "move_left"
	case CommandMoveRight:
		return "move_right"
	case CommandJump:
		return "jump"
	case CommandAttack:
		return "attack"
	}
	return "unknown"
}

// Command is one discrete input event. Jump and Attack only act on press.
type Command struct {
	Kind    CommandKind
	Pressed bool
}

// InputData queues commands for the player until the input system drains them.
type InputData struct {
	Queue []Command
}

func (in *InputData) Push(c Command) {
	in.Queue = append(in.Queue, c)
}

var Input = donburi.NewComponentType[InputData]()

// SettingsData holds front-end toggles that are not gameplay state.
type SettingsData struct {
	ShowHitboxes bool
	Fullscreen   bool
}

var Settings = donburi.NewComponentType[SettingsData]()
