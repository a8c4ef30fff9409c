package components

import "github.com/yohamta/donburi"

type ItemData struct {
	Collected bool
	Heal      int
}

var Item = donburi.NewComponentType[ItemData]()

// DoorData marks a level exit. Target is the level index it leads to.
type DoorData struct {
	Target int
}

var Door = donburi.NewComponentType[DoorData]()

// PlatformData remembers the tile code a platform was built from so the
// renderer can pick its sheet.
type PlatformData struct {
	Code int
}

var Platform = donburi.NewComponentType[PlatformData]()
