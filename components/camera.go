package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the top-left corner of the view in world pixels. Shake is
// added on top at draw time so it never drifts the follow position.
type CameraData struct {
	Position math.Vec2
	Shake    math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
