package factory

import (
	"github.com/cugone/LunarLander/archetypes"
	"github.com/cugone/LunarLander/components"
	cfg "github.com/cugone/LunarLander/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the camera with the configured zoom range and initial zoom.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	data := &components.CameraData{Zoom: 1}
	data.SetZoomLevelRange(cfg.Camera.ZoomMin, cfg.Camera.ZoomMax)
	data.SetZoomLevel(cfg.Camera.ZoomInitial)
	components.Camera.Set(camera, data)
	components.ScreenShake.Set(camera, &components.ScreenShakeData{})
	return camera
}
