package animations

// WrapPolicy decides what happens when a strip runs past its last frame.
type WrapPolicy int

const (
	// Loop wraps back to the first frame.
	Loop WrapPolicy = iota
	// Clamp holds the last frame.
	Clamp
	// Terminal holds the last frame and reports Done so the owner can leave the state.
	Terminal
)

// Strip describes one animation strip: how many images it has, how many ticks
// each image is held and what happens at the end.
type Strip struct {
	Frames int
	Delay  int
	Wrap   WrapPolicy
}

type Animation struct {
	Strip Strip
	frame int
	timer int
	done  bool
}

// Advance counts one tick. Once the tick counter reaches the strip delay it
// resets, moves to the next frame and returns true.
func (a *Animation) Advance() bool {
	if a.done {
		return false
	}
	a.timer++
	if a.timer < a.delay() {
		return false
	}
	a.timer = 0
	a.frame++

	if a.frame >= a.Strip.Frames {
		switch a.Strip.Wrap {
		case Loop:
			a.frame = 0
		case Clamp:
			a.frame = a.last()
		case Terminal:
			a.frame = a.last()
			a.done = true
		}
	}
	return true
}

func (a *Animation) delay() int {
	if a.Strip.Delay < 1 {
		return 1
	}
	return a.Strip.Delay
}

func (a *Animation) last() int {
	if a.Strip.Frames < 1 {
		return 0
	}
	return a.Strip.Frames - 1
}

// Frame returns the current frame index, always within [0, Frames).
func (a *Animation) Frame() int {
	return a.frame
}

// Timer returns the tick accumulator, always within [0, Delay).
func (a *Animation) Timer() int {
	return a.timer
}

// Done reports whether a Terminal strip has played its last frame.
func (a *Animation) Done() bool {
	return a.done
}

func (a *Animation) Restart() {
	a.frame = 0
	a.timer = 0
	a.done = false
}

// Play swaps in a new strip and restarts it.
func (a *Animation) Play(s Strip) {
	a.Strip = s
	a.Restart()
}

func NewAnimation(frames, delay int, wrap WrapPolicy) *Animation {
	return &Animation{
		Strip: Strip{Frames: frames, Delay: delay, Wrap: wrap},
	}
}
