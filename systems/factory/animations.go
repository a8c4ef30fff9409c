package factory

import (
	"github.com/automoto/knightfall/assets/animations"
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
)

// NewAnimationData builds an entity's frame clock over the given tables and
// starts it on the strip for state.
func NewAnimationData(strips map[cfg.StateID]cfg.Strip, sprites map[cfg.StateID]cfg.SpriteSheet, state cfg.StateID) components.AnimationData {
	anim := components.AnimationData{
		Anim:    &animations.Animation{},
		Strips:  strips,
		Sprites: sprites,
	}
	anim.Play(state)
	return anim
}
