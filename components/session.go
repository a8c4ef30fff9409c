package components

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

// SheetRotation is the last alternate sheet handed out per boss state. It
// lives on the session so consecutive bosses, including those rebuilt by a
// level reload, never repeat the previous attack sheet.
type SheetRotation struct {
	LastAttack int
}

// NewSheetRotation returns a rotation whose first pick is sheet 0.
func NewSheetRotation() *SheetRotation {
	return &SheetRotation{LastAttack: -1}
}

// NextAttack advances the attack rotation over n sheets and returns the pick.
func (r *SheetRotation) NextAttack(n int) int {
	if n <= 0 {
		return 0
	}
	r.LastAttack = (r.LastAttack + 1) % n
	return r.LastAttack
}

// SessionData is the run-wide context shared by every system.
type SessionData struct {
	ShouldQuit bool // lives exhausted
	Victory    bool // the oracle was struck
	Exit       bool // the player asked to close the game
	Sheets     *SheetRotation
	Rand       *rand.Rand
	Tick       int
	EndedTicks int // ticks since the run ended
}

// Ended reports whether the run is over and the simulation must stop.
func (s *SessionData) Ended() bool {
	return s.ShouldQuit || s.Victory
}

var Session = donburi.NewComponentType[SessionData]()
