package factory

import (
	"github.com/cugone/LunarLander/archetypes"
	"github.com/cugone/LunarLander/assets"
	"github.com/cugone/LunarLander/components"
	"github.com/cugone/LunarLander/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround spawns a solid ground rectangle and adds it to the space.
func CreateGround(ecs *ecs.ECS, g assets.GroundRect) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)

	resolvTags := []string{tags.ResolvSolid}
	if g.Pad {
		resolvTags = append(resolvTags, tags.ResolvPad)
		ground.AddComponent(tags.Pad)
	}

	offset := spaceOffset(ecs.World)
	obj := resolv.NewObject(g.X+offset.X, g.Y+offset.Y, g.Width, g.Height, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, g.Width, g.Height))
	obj.Data = ground // Link for O(1) lookup

	components.Object.SetValue(ground, components.ObjectData{Object: obj, Offset: offset})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return ground
}
