package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimation_Advance(t *testing.T) {
	t.Run("frame advances once per delay", func(t *testing.T) {
		a := NewAnimation(4, 3, Loop)
		assert.False(t, a.Advance())
		assert.False(t, a.Advance())
		assert.True(t, a.Advance())
		assert.Equal(t, 1, a.Frame())
		assert.Equal(t, 0, a.Timer())
	})

	t.Run("loop wraps to zero", func(t *testing.T) {
		a := NewAnimation(4, 1, Loop)
		for i := 0; i < 4; i++ {
			a.Advance()
		}
		assert.Equal(t, 0, a.Frame())
		assert.False(t, a.Done())
	})

	t.Run("clamp holds last frame", func(t *testing.T) {
		a := NewAnimation(8, 1, Clamp)
		for i := 0; i < 20; i++ {
			a.Advance()
		}
		assert.Equal(t, 7, a.Frame())
		assert.False(t, a.Done())
	})

	t.Run("terminal reports done and stops", func(t *testing.T) {
		a := NewAnimation(3, 2, Terminal)
		ticks := 0
		for !a.Done() {
			a.Advance()
			ticks++
			require.Less(t, ticks, 100)
		}
		assert.Equal(t, 6, ticks)
		assert.Equal(t, 2, a.Frame())
		assert.False(t, a.Advance())
	})

	t.Run("zero delay behaves like one", func(t *testing.T) {
		a := NewAnimation(2, 0, Loop)
		assert.True(t, a.Advance())
		assert.Equal(t, 1, a.Frame())
	})
}

func TestAnimation_TimerInvariant(t *testing.T) {
	a := NewAnimation(6, 4, Loop)
	for i := 0; i < 50; i++ {
		a.Advance()
		assert.GreaterOrEqual(t, a.Timer(), 0)
		assert.Less(t, a.Timer(), 4)
		assert.Less(t, a.Frame(), 6)
	}
}

func TestAnimation_Play(t *testing.T) {
	a := NewAnimation(3, 1, Terminal)
	a.Advance()
	a.Advance()
	a.Advance()
	require.True(t, a.Done())

	a.Play(Strip{Frames: 5, Delay: 2, Wrap: Loop})
	assert.False(t, a.Done())
	assert.Equal(t, 0, a.Frame())
	assert.Equal(t, 0, a.Timer())
	assert.Equal(t, 5, a.Strip.Frames)
}
