package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	FacingLeft  bool
	MovingLeft  bool
	MovingRight bool
	VelocityY   float64
	Airborne    bool

	// Where the last death happened, used to pick the respawn platform
	LastDeathX float64
	LastDeathY float64

	DisplayHealth float64 // smoothed health for the HUD

	SpawnX float64
	SpawnY float64
}

var Player = donburi.NewComponentType[PlayerData]()
