package systems

import (
	"math"
	"strings"
	"testing"

	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wideLevel is twice the screen width with a floor along the bottom.
func wideLevel(cols int) []string {
	empty := strings.TrimSpace(strings.Repeat("0 ", cols))
	floor := strings.TrimSpace(strings.Repeat("1 ", cols))
	return []string{empty, empty, empty, floor}
}

func TestCamera_FollowsPlayerWithinLevel(t *testing.T) {
	e := newTestWorld(t, wideLevel(40))
	player := settle(t, e)
	obj := components.Object.Get(player)
	screenW := float64(cfg.C.Width)
	levelW := 40 * cfg.World.TileWidth

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"left edge", 118, 0},
		{"centered", 1000, 1000 - screenW/2},
		{"right edge", levelW - obj.W, levelW - screenW},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placeAt(player, tt.x, obj.Y)
			UpdateCamera(e)
			x, y := ViewOrigin(e)
			assert.Equal(t, tt.want, x)
			assert.Zero(t, y)
		})
	}
}

func TestCamera_NarrowLevelNeverScrolls(t *testing.T) {
	e := newTestWorld(t, flatLevel)
	player := settle(t, e)
	placeAt(player, 1000, components.Object.Get(player).Y)
	UpdateCamera(e)
	x, _ := ViewOrigin(e)
	assert.Zero(t, x)
}

func TestScreenShake_DecaysAndClears(t *testing.T) {
	e := newTestWorld(t, flatLevel)
	camera, ok := components.Camera.First(e.World)
	require.True(t, ok)
	data := components.Camera.Get(camera)

	TriggerScreenShake(e, 10, 20)
	for remaining := 20; remaining > 0; remaining-- {
		UpdateCamera(e)
		strength := math.Hypot(data.Shake.X, data.Shake.Y)
		assert.InDelta(t, 10*float64(remaining)/cfg.ScreenShake.ProgressDivisor, strength, 1e-9)
	}

	UpdateCamera(e)
	assert.False(t, camera.HasComponent(components.ScreenShake))
	assert.Zero(t, data.Shake.X)
	assert.Zero(t, data.Shake.Y)
	x, _ := ViewOrigin(e)
	assert.Equal(t, data.Position.X, x)
}

func TestScreenShake_OnlyStrongerOverrides(t *testing.T) {
	e := newTestWorld(t, flatLevel)
	camera, _ := components.Camera.First(e.World)

	TriggerScreenShake(e, 5, 10)
	TriggerScreenShake(e, 10, 20)
	shake := components.ScreenShake.Get(camera)
	assert.Equal(t, 10.0, shake.Intensity)
	assert.Equal(t, 20, shake.Duration)

	TriggerScreenShake(e, 3, 50)
	assert.Equal(t, 10.0, shake.Intensity)
	assert.Equal(t, 20, shake.Duration)
}
