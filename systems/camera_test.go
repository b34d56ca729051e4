package systems

import (
	"testing"

	"github.com/cugone/LunarLander/components"
	cfg "github.com/cugone/LunarLander/config"
	"github.com/yohamta/donburi/features/math"
)

func TestCameraFollowsLockedLander(t *testing.T) {
	e, l := newTestScene(math.Vec2{X: 50, Y: 60})
	components.Physics.Get(l.Entry()).Orientation = components.RadiansFromDegrees(30)

	settings := GetOrCreateSettings(e)
	settings.LockCameraPosition = true
	settings.LockCameraRotation = true
	UpdateCamera(nil)(e)

	entry, _ := components.Camera.First(e.World)
	camera := components.Camera.Get(entry)
	if camera.Position != l.GetPosition() {
		t.Errorf("Expected camera at lander (50, 60), got (%f, %f)", camera.Position.X, camera.Position.Y)
	}
	if !near(camera.RotationDegrees(), 30) {
		t.Errorf("Expected camera rotation 30, got %f", camera.RotationDegrees())
	}

	settings.LockCameraPosition = false
	settings.LockCameraRotation = false
	UpdateCamera(nil)(e)
	if camera.Position != (math.Vec2{}) || camera.Rotation != 0 {
		t.Errorf("Expected camera reset to origin, got (%f, %f) at %f", camera.Position.X, camera.Position.Y, camera.Rotation)
	}
}

func TestShakeLeavesDerivedPoseExact(t *testing.T) {
	e, l := newTestScene(math.Vec2{X: 50, Y: 60})
	settings := GetOrCreateSettings(e)
	settings.LockCameraPosition = true

	TriggerScreenShake(e, 1, 1)
	UpdateCamera(fixedRand{v: 0.9})(e)

	entry, _ := components.Camera.First(e.World)
	camera := components.Camera.Get(entry)
	if camera.Position != l.GetPosition() {
		t.Errorf("Expected camera exactly at the lander, got (%f, %f)", camera.Position.X, camera.Position.Y)
	}
	if camera.ShakeOffset == (math.Vec2{}) || camera.ShakeAngle == 0 {
		t.Error("Expected a shake offset and angle")
	}
	maxX := settings.Options.GetMaxShakeOffsetHorizontal()
	if camera.ShakeOffset.X > maxX || camera.ShakeOffset.X < -maxX {
		t.Errorf("Expected horizontal shake within %f, got %f", maxX, camera.ShakeOffset.X)
	}

	for i := 0; i < 120; i++ {
		UpdateCamera(fixedRand{v: 0.9})(e)
	}
	if camera.ShakeOffset != (math.Vec2{}) || camera.ShakeAngle != 0 {
		t.Error("Expected shake to settle")
	}
}

func TestEngineRumbleShakesCamera(t *testing.T) {
	e, l := newTestScene(math.Vec2{})
	l.BeginThrust()
	l.Update(cfg.DeltaSeconds())

	UpdateCamera(fixedRand{v: 1})(e)
	entry, _ := components.Camera.First(e.World)
	if components.Camera.Get(entry).ShakeOffset == (math.Vec2{}) {
		t.Error("Expected rumble while the engine fires")
	}
}

func TestWheelZoomEasesAndRespectsCapture(t *testing.T) {
	e, _ := newTestScene(math.Vec2{})
	in := newFakeInput()
	ui := &fakeUI{}
	controller := UpdateCameraController(ui)

	entry, _ := components.Camera.First(e.World)
	camera := components.Camera.Get(entry)
	start := camera.Zoom

	in.wheel = 1
	UpdateInput(in)(e)
	controller(e)
	want := start + cfg.Camera.ZoomStep
	if camera.ZoomTarget != want {
		t.Fatalf("Expected zoom target %f, got %f", want, camera.ZoomTarget)
	}
	if camera.Zoom <= start || camera.Zoom >= want {
		t.Errorf("Expected eased zoom between %f and %f, got %f", start, want, camera.Zoom)
	}

	in.wheel = 0
	for i := 0; i < 60; i++ {
		UpdateInput(in)(e)
		controller(e)
	}
	if camera.Zoom != want {
		t.Errorf("Expected zoom to settle at %f, got %f", want, camera.Zoom)
	}

	ui.mouse = true
	in.wheel = 1
	UpdateInput(in)(e)
	controller(e)
	if camera.ZoomTarget != want {
		t.Errorf("Expected captured wheel to be ignored, target %f", camera.ZoomTarget)
	}
}
