package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarpitch/voidfall/components"
	cfg "github.com/lunarpitch/voidfall/config"
	"github.com/lunarpitch/voidfall/tags"
)

// UpdateCamera eases the camera toward the player. The world is unbounded,
// so there is no level-edge clamping.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, camera)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	target := components.Object.Get(playerEntry).Rect.Center()

	camera.Position.X += (target.X - camera.Position.X) * cfg.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * cfg.Camera.FollowSmoothing
}

// updateScreenShake applies a decaying oscillating offset to the camera and
// drops the component once the shake runs out.
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed += cfg.World.DeltaTime

	progress := (shake.Duration - shake.Elapsed) / shake.Duration
	if progress < 0 {
		progress = 0
	}
	intensity := shake.Intensity * progress

	phase := shake.Elapsed / cfg.World.DeltaTime
	camera.Position.X += math.Sin(phase*1.1) * intensity
	camera.Position.Y += math.Cos(phase*1.3) * intensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake on the camera. A weaker shake
// never interrupts a stronger one already playing.
func TriggerScreenShake(e *ecs.ECS, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
		})
	}
}
