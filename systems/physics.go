package systems

import (
	"github.com/cugone/LunarLander/components"
	"github.com/cugone/LunarLander/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePhysics(e *ecs.ECS) {
	dt := GetOrCreateSettings(e).DeltaSeconds
	components.Physics.Each(e.World, func(entry *donburi.Entry) {
		// Cursor-driven bodies are not integrated
		if entry.HasComponent(tags.MouseLocked) {
			return
		}
		components.Physics.Get(entry).Update(dt)
	})
}
