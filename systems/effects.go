package systems

import (
	"github.com/cugone/LunarLander/components"
	"github.com/yohamta/donburi/ecs"
)

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(e *ecs.ECS, amount float64, durationSeconds float32) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	if !cameraEntry.HasComponent(components.ScreenShake) {
		cameraEntry.AddComponent(components.ScreenShake)
	}
	components.ScreenShake.Get(cameraEntry).Trigger(amount, durationSeconds)
}

// ShakeAmount returns the camera's current shake amount.
func ShakeAmount(e *ecs.ECS) float64 {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok || !cameraEntry.HasComponent(components.ScreenShake) {
		return 0
	}
	return components.ScreenShake.Get(cameraEntry).Amount
}
