package systems

import (
	"github.com/cugone/LunarLander/components"
	cfg "github.com/cugone/LunarLander/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// RandomSource supplies the screen-shake jitter. *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// UpdateCameraController applies mouse-wheel zoom and advances the zoom ease.
func UpdateCameraController(ui UICapture) ecs.System {
	return func(e *ecs.ECS) {
		cameraEntry, ok := components.Camera.First(e.World)
		if !ok {
			return
		}
		camera := components.Camera.Get(cameraEntry)
		input := getOrCreateInput(e)

		mouseFree := ui == nil || !ui.WantsMouseCapture()
		if mouseFree && input.WheelY != 0 {
			camera.ZoomTo(camera.ZoomTarget+input.WheelY*cfg.Camera.ZoomStep, newZoomTween)
		}

		if camera.ZoomTween != nil {
			zoom, finished := camera.ZoomTween.Update(float32(GetOrCreateSettings(e).DeltaSeconds))
			camera.Zoom = float64(zoom)
			if finished {
				camera.Zoom = camera.ZoomTarget
				camera.ZoomTween = nil
			}
		}
	}
}

func newZoomTween(from, to float64) *gween.Tween {
	return gween.New(float32(from), float32(to), cfg.Camera.ZoomDuration, ease.OutCubic)
}

// UpdateCamera re-derives the camera pose from the lock flags every frame and
// applies the current shake. Must run AFTER UpdateLanders.
func UpdateCamera(rng RandomSource) ecs.System {
	return func(e *ecs.ECS) {
		cameraEntry, ok := components.Camera.First(e.World)
		if !ok {
			return
		}
		camera := components.Camera.Get(cameraEntry)
		settings := GetOrCreateSettings(e)

		lander, hasLander := FirstLander(e.World)

		var amount float64
		if cameraEntry.HasComponent(components.ScreenShake) {
			shake := components.ScreenShake.Get(cameraEntry)
			if hasLander && lander.data().EngineFiring {
				shake.Rumble = cfg.ScreenShake.ThrustAmount
			}
			amount = shake.Update(settings.DeltaSeconds)
		}

		camera.SetPosition(math.Vec2{})
		camera.SetRotationDegrees(0)
		if hasLander {
			if settings.LockCameraRotation {
				camera.SetRotationDegrees(lander.GetOrientationDegrees())
			}
			if settings.LockCameraPosition {
				camera.SetPosition(lander.GetPosition())
			}
		}

		applyScreenShake(camera, settings.Options, amount, rng)
	}
}

// applyScreenShake jitters the view within the option maxima scaled by amount.
// The jitter lives in the shake fields so the derived pose stays exact.
func applyScreenShake(camera *components.CameraData, opts *cfg.GameOptions, amount float64, rng RandomSource) {
	if amount <= 0 || opts == nil || rng == nil {
		camera.ShakeAngle = 0
		camera.ShakeOffset = math.Vec2{}
		return
	}
	camera.ShakeAngle = components.RadiansFromDegrees(opts.GetMaxShakeAngle() * amount * signedUnit(rng))
	camera.ShakeOffset = math.Vec2{
		X: opts.GetMaxShakeOffsetHorizontal() * amount * signedUnit(rng),
		Y: opts.GetMaxShakeOffsetVertical() * amount * signedUnit(rng),
	}
}

// signedUnit returns a value in [-1, 1).
func signedUnit(rng RandomSource) float64 {
	return rng.Float64()*2 - 1
}
