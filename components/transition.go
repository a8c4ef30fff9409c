package components

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

type TransitionPhase int

const (
	TransitionIdle TransitionPhase = iota
	TransitionFadingOut
)

// TransitionData fades the screen to black before a level load. The alpha
// follows a linear tween so it rises by a fixed step each tick.
type TransitionData struct {
	Phase  TransitionPhase
	Alpha  int
	Target int

	speed    int
	maxAlpha int
	tween    *gween.Tween
}

// NewTransition returns an idle transition stepping speed alpha per tick.
func NewTransition(speed, maxAlpha int) TransitionData {
	if speed < 1 {
		speed = 1
	}
	return TransitionData{speed: speed, maxAlpha: maxAlpha}
}

// Start begins fading out toward the target level. Starting while a fade is
// already running is ignored.
func (t *TransitionData) Start(target int) {
	if t.Active() {
		return
	}
	ticks := math.Ceil(float64(t.maxAlpha) / float64(t.speed))
	t.tween = gween.New(0, float32(t.speed)*float32(ticks), float32(ticks), ease.Linear)
	t.Phase = TransitionFadingOut
	t.Alpha = 0
	t.Target = target
}

// Update advances the fade by one tick. It returns true exactly once, on the
// tick the alpha reaches its maximum, and the transition is then idle again.
func (t *TransitionData) Update() bool {
	if !t.Active() {
		return false
	}
	v, _ := t.tween.Update(1)
	t.Alpha = int(v + 0.5)
	if t.Alpha < t.maxAlpha {
		return false
	}
	t.Alpha = t.maxAlpha
	t.Phase = TransitionIdle
	t.tween = nil
	return true
}

func (t *TransitionData) Active() bool {
	return t.Phase == TransitionFadingOut
}

var Transition = donburi.NewComponentType[TransitionData]()
