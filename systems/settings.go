package systems

import (
	"github.com/cugone/LunarLander/components"
	cfg "github.com/cugone/LunarLander/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, creating it
// from the default options if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		opts := cfg.DefaultGameOptions()
		components.Settings.SetValue(ent, components.SettingsData{
			Options:      &opts,
			DebugRender:  cfg.Debug.Render,
			DeltaSeconds: cfg.DeltaSeconds(),
			ScreenWidth:  cfg.C.Width,
			ScreenHeight: cfg.C.Height,
		})
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}

// WithSessionCheck wraps a system so it stops running once the session is quitting.
func WithSessionCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreateSettings(e).Quitting {
			return
		}
		system(e)
	}
}
