package components

import (
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's body in world pixels.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the body as a plain rectangle for overlap tests.
func (o ObjectData) Rect() gamemath.Rect {
	return gamemath.NewRect(o.X, o.Y, o.W, o.H)
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
