package systems

import (
	"github.com/cugone/LunarLander/components"
	"github.com/cugone/LunarLander/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMouseLock places every mouse-locked lander under the cursor.
func UpdateMouseLock(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)

	tags.MouseLocked.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Physics) {
			return
		}
		world := camera.ScreenToWorld(float64(input.CursorX), float64(input.CursorY), settings.ScreenWidth, settings.ScreenHeight)
		NewLander(entry).SetPosition(world)
	})
}
