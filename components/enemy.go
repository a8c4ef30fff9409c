package components

import (
	"github.com/automoto/knightfall/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Type *config.EnemyTypeConfig

	FacingRight bool
	PatrolMin   float64
	PatrolMax   float64

	// Combat
	HitCount       int
	AttackCooldown int // ticks until the attack can register again
	ShootTimer     int
	ToRemove       bool // set only when the dying animation completes

	// Alternate sheet indices (boss)
	MoveSheet   int
	AttackSheet int
	DyingSheet  int

	// Hit is set once a scripted NPC has been struck
	Hit bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
