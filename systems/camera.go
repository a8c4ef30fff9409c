package systems

import (
	"math"

	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera centers the view on the player, clamped to the level, and
// applies any active screen shake as a separate offset.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, camera)

	player, ok := playerEntry(e)
	if !ok {
		return
	}
	obj := components.Object.Get(player)

	screenWidth := float64(config.C.Width)
	maxX := math.Max(0, levelWidth(e)-screenWidth)
	camera.Position.X = gamemath.Clamp(obj.X-screenWidth/2, 0, maxX)
	camera.Position.Y = 0
}

// updateScreenShake sets the shake offset for this tick and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	camera.Shake.X, camera.Shake.Y = 0, 0
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	remaining := shake.Duration - shake.Elapsed
	if remaining <= 0 {
		cameraEntry.RemoveComponent(components.ScreenShake)
		return
	}
	shake.Elapsed++

	// Strength decays with the ticks left
	strength := shake.Intensity * float64(remaining) / config.ScreenShake.ProgressDivisor
	phase := float64(shake.Elapsed) * config.ScreenShake.Frequency
	camera.Shake.X = math.Sin(phase) * strength
	camera.Shake.Y = math.Cos(phase) * strength
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity >= shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(cameraEntry, components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}

// ViewOrigin returns the top-left of the view including shake.
func ViewOrigin(e *ecs.ECS) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Position.X + camera.Shake.X, camera.Position.Y + camera.Shake.Y
}
