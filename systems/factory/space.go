package factory

import (
	"github.com/cugone/LunarLander/archetypes"
	"github.com/cugone/LunarLander/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateSpace creates the collision space. offset is added to world
// coordinates to place colliders in the space.
func CreateSpace(ecs *ecs.ECS, offset math.Vec2, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	components.SpaceOffset.SetValue(space, offset)
	return space
}

func spaceOffset(w donburi.World) math.Vec2 {
	if entry, ok := components.SpaceOffset.First(w); ok {
		return *components.SpaceOffset.Get(entry)
	}
	return math.Vec2{}
}
