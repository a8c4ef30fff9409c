package components

import (
	"github.com/automoto/knightfall/assets/animations"
	"github.com/automoto/knightfall/config"
	"github.com/yohamta/donburi"
)

// AnimationData is an entity's frame clock plus the per-state tables it plays
// from. The tables are shared config data and must not be mutated.
type AnimationData struct {
	Anim    *animations.Animation
	Strips  map[config.StateID]config.Strip
	Sprites map[config.StateID]config.SpriteSheet
}

// Play switches to the strip for state and restarts it from frame 0. States
// without a strip keep the current strip but still restart the clock.
func (a *AnimationData) Play(state config.StateID) {
	if a.Anim == nil {
		a.Anim = &animations.Animation{}
	}
	if strip, ok := a.Strips[state]; ok {
		a.Anim.Play(strip)
		return
	}
	a.Anim.Restart()
}

var Animation = donburi.NewComponentType[AnimationData]()
