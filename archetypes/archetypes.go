package archetypes

import (
	"github.com/cugone/LunarLander/components"
	cfg "github.com/cugone/LunarLander/config"
	"github.com/cugone/LunarLander/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Lander = newArchetype(
		tags.Lander,
		components.Lander,
		components.Physics,
		components.Object,
		components.Mesh,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
		components.SpaceOffset,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
		components.ScreenShake,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.LayerWorld,
		append(a.components, cs...)...,
	))
	return e
}
