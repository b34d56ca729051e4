package factory

import (
	"github.com/cugone/LunarLander/archetypes"
	"github.com/cugone/LunarLander/assets"
	"github.com/cugone/LunarLander/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity holding level.
func CreateLevel(ecs *ecs.ECS, level assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: &level,
	})
	return entry
}
