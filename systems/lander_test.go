package systems

import (
	gomath "math"
	"testing"

	"github.com/cugone/LunarLander/components"
	cfg "github.com/cugone/LunarLander/config"
	"github.com/yohamta/donburi/features/math"
)

func near(a, b float64) bool {
	return gomath.Abs(a-b) < 1e-9
}

func TestLanderThrustFrame(t *testing.T) {
	_, l := newTestScene(math.Vec2{X: 100, Y: 100})

	if l.SpriteState() != cfg.SpriteIdle {
		t.Fatalf("Expected a new lander to be idle, got %s", l.SpriteState())
	}

	l.BeginFrame()
	l.BeginThrust()
	l.Update(0.1)

	if l.SpriteState() != cfg.SpriteThrust {
		t.Errorf("Expected thrust sprite, got %s", l.SpriteState())
	}
	v := l.GetVelocity()
	want := -cfg.Lander.ThrustForceKiloNewtons * 0.1 / cfg.Lander.Mass
	if !near(v.X, 0) || !near(v.Y, want) {
		t.Errorf("Expected velocity (0, %f) along local up, got (%f, %f)", want, v.X, v.Y)
	}
	if l.FuelPounds() >= cfg.Lander.InitialFuelPounds {
		t.Errorf("Expected fuel burn, still %f lb", l.FuelPounds())
	}
	l.EndFrame()

	if !l.IsThrusting() {
		t.Error("Expected thrust to persist across EndFrame while fuel remains")
	}

	l.EndThrust()
	l.EndFrame()
	if l.SpriteState() != cfg.SpriteIdle {
		t.Errorf("Expected idle sprite after EndThrust, got %s", l.SpriteState())
	}
}

func TestLanderTransformFollowsBody(t *testing.T) {
	_, l := newTestScene(math.Vec2{X: 100, Y: 100})
	l.Update(cfg.DeltaSeconds())

	m := l.GetTransform()
	x, y := m.Apply(0, 0)
	if !near(x, 100) || !near(y, 100) {
		t.Errorf("Expected quad center at (100, 100), got (%f, %f)", x, y)
	}
	x, _ = m.Apply(0.5, 0)
	if !near(x, 108) {
		t.Errorf("Expected quad edge at x=108 for a 16px frame, got %f", x)
	}

	mesh := components.Mesh.Get(l.Entry())
	if !mesh.Ready() || len(mesh.Indices) != 6 {
		t.Errorf("Expected a ready quad mesh, got %d indices", len(mesh.Indices))
	}
}

func TestDeltaRotationIsClearedByEndFrame(t *testing.T) {
	_, l := newTestScene(math.Vec2{})

	l.RotateRight()
	l.Update(1)
	first := l.GetOrientationDegrees()
	if !near(first, cfg.Lander.RotationSpeedDegrees) {
		t.Errorf("Expected %f degrees, got %f", cfg.Lander.RotationSpeedDegrees, first)
	}

	l.EndFrame()
	l.Update(1)
	if !near(l.GetOrientationDegrees(), first) {
		t.Errorf("Expected orientation to hold after EndFrame, got %f", l.GetOrientationDegrees())
	}

	l.RotateLeft()
	l.RotateRight()
	l.Update(1)
	if !near(l.GetOrientationDegrees(), first) {
		t.Errorf("Expected opposing rotations to cancel, got %f", l.GetOrientationDegrees())
	}
}

func TestTorqueRotationDrivesAngularVelocity(t *testing.T) {
	_, l := newTestScene(math.Vec2{})
	components.Lander.Get(l.Entry()).RotationMode = cfg.RotationTorque

	l.RotateLeft()
	body := components.Physics.Get(l.Entry())
	if body.PendingTorques() != 1 {
		t.Fatalf("Expected one pending torque, got %d", body.PendingTorques())
	}
	if components.Lander.Get(l.Entry()).DeltaOrientation != 0 {
		t.Error("Torque mode should not accumulate a delta")
	}

	body.Update(cfg.DeltaSeconds())
	if body.AngularVelocity >= 0 {
		t.Errorf("Expected counter-clockwise spin, got %f", body.AngularVelocity)
	}
}

func TestFuelNeverGoesNegative(t *testing.T) {
	_, l := newTestScene(math.Vec2{})
	components.Lander.Get(l.Entry()).FuelPounds = 0.001

	l.BeginThrust()
	l.Update(1)
	if l.FuelPounds() != 0 {
		t.Fatalf("Expected empty tank, got %f", l.FuelPounds())
	}

	before := l.GetVelocity()
	l.Update(1)
	l.TranslateLeft()
	if l.GetVelocity() != before {
		t.Error("Expected no thrust without fuel")
	}
	if l.SpriteState() != cfg.SpriteIdle {
		t.Errorf("Expected idle sprite without fuel, got %s", l.SpriteState())
	}

	l.EndFrame()
	if l.IsThrusting() {
		t.Error("Expected EndFrame to drop thrust without fuel")
	}
}

func TestTranslateUsesLocalRight(t *testing.T) {
	_, l := newTestScene(math.Vec2{})
	l.TranslateRight()
	v := l.GetVelocity()
	if v.X <= 0 || !near(v.Y, 0) {
		t.Errorf("Expected rightward velocity, got (%f, %f)", v.X, v.Y)
	}
}

func TestMouseLockedLanderFollowsCursor(t *testing.T) {
	e, l := newTestScene(math.Vec2{X: 5, Y: 5})
	settings := GetOrCreateSettings(e)
	settings.ScreenWidth = 640
	settings.ScreenHeight = 360

	in := newFakeInput()
	in.cursorX = 340
	in.cursorY = 180
	l.SetMouseLocked(true)

	UpdateInput(in)(e)
	UpdateMouseLock(e)
	UpdatePhysics(e)

	// Initial zoom is 2 and the camera sits at the origin
	p := l.GetPosition()
	if !near(p.X, 10) || !near(p.Y, 0) {
		t.Errorf("Expected lander under the cursor at (10, 0), got (%f, %f)", p.X, p.Y)
	}

	components.Physics.Get(l.Entry()).Velocity = math.Vec2{X: 3, Y: 3}
	l.SetMouseLocked(false)
	if l.IsMouseLocked() {
		t.Error("Expected lander unlocked")
	}
	if l.GetVelocity() != (math.Vec2{}) {
		t.Error("Expected velocity cleared on unlock")
	}
}

func TestMouseLockIgnoresScreenShake(t *testing.T) {
	e, l := newTestScene(math.Vec2{})
	in := newFakeInput()
	in.cursorX = 340
	in.cursorY = 180
	l.SetMouseLocked(true)

	entry, _ := components.Camera.First(e.World)
	camera := components.Camera.Get(entry)
	camera.ShakeOffset = math.Vec2{X: 9, Y: -4}
	camera.ShakeAngle = 0.1

	UpdateInput(in)(e)
	UpdateMouseLock(e)
	if p := l.GetPosition(); !near(p.X, 10) || !near(p.Y, 0) {
		t.Errorf("Expected the lander steady under the cursor at (10, 0), got (%f, %f)", p.X, p.Y)
	}
}
