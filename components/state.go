package components

import (
	"github.com/automoto/knightfall/config"
	"github.com/yohamta/donburi"
)

// StateData is the single active state of an actor. Being one enum value,
// exactly one state is active at any time.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
}

// Set records next as current. It reports false when the state is unchanged.
func (s *StateData) Set(next config.StateID) bool {
	if s.CurrentState == next {
		return false
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	return true
}

func (s *StateData) Is(states ...config.StateID) bool {
	for _, st := range states {
		if s.CurrentState == st {
			return true
		}
	}
	return false
}

var State = donburi.NewComponentType[StateData]()
