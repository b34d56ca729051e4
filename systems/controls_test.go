package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func frame(e *ecs.ECS, in *fakeInput, ui UICapture) {
	UpdateInput(in)(e)
	UpdateControls(ui)(e)
}

func TestThrustKeyBeginsAndEndsThrust(t *testing.T) {
	e, l := newTestScene(math.Vec2{})
	in := newFakeInput()

	in.keys[ebiten.KeyS] = true
	frame(e, in, nil)
	if !l.IsThrusting() {
		t.Fatal("Expected thrust while S is held")
	}

	in.keys[ebiten.KeyS] = false
	frame(e, in, nil)
	if l.IsThrusting() {
		t.Error("Expected thrust to end when S is released")
	}
}

func TestTranslateLeftWinsOverRight(t *testing.T) {
	e, l := newTestScene(math.Vec2{})
	in := newFakeInput()
	in.keys[ebiten.KeyA] = true
	in.keys[ebiten.KeyD] = true
	frame(e, in, nil)

	if v := l.GetVelocity(); v.X >= 0 {
		t.Errorf("Expected leftward velocity, got %f", v.X)
	}
}

func TestDebugTogglesRespectKeyboardCapture(t *testing.T) {
	e, l := newTestScene(math.Vec2{})
	settings := GetOrCreateSettings(e)
	in := newFakeInput()
	ui := &fakeUI{keyboard: true}

	in.keys[ebiten.KeyF1] = true
	frame(e, in, ui)
	if settings.DebugRender {
		t.Error("Expected F1 ignored while the UI owns the keyboard")
	}

	in.keys[ebiten.KeyF1] = false
	frame(e, in, ui)
	ui.keyboard = false

	in.keys[ebiten.KeyF1] = true
	in.keys[ebiten.KeyF2] = true
	in.keys[ebiten.KeyF3] = true
	in.keys[ebiten.KeyF6] = true
	frame(e, in, ui)
	if !settings.DebugRender {
		t.Error("Expected F1 to enable debug render")
	}
	if !l.IsMouseLocked() {
		t.Error("Expected F2 to lock the lander to the mouse")
	}
	if !settings.LockCameraRotation {
		t.Error("Expected F3 to lock camera rotation")
	}
	if ui.toggles != 1 {
		t.Errorf("Expected F6 to toggle the options window once, got %d", ui.toggles)
	}

	// Held keys do not repeat
	frame(e, in, ui)
	if !settings.DebugRender || ui.toggles != 1 {
		t.Error("Expected toggles to fire on press only")
	}
}

func TestPositionLockToggles(t *testing.T) {
	e, _ := newTestScene(math.Vec2{})
	settings := GetOrCreateSettings(e)
	in := newFakeInput()

	in.keys[ebiten.KeyL] = true
	frame(e, in, nil)
	if !settings.LockCameraPosition {
		t.Fatal("Expected L to lock camera position")
	}

	in.keys[ebiten.KeyL] = false
	frame(e, in, nil)
	in.keys[ebiten.KeyF] = true
	frame(e, in, nil)
	if settings.LockCameraPosition {
		t.Error("Expected F to unlock camera position")
	}
}

func TestQuitStopsSessionSystems(t *testing.T) {
	e, l := newTestScene(math.Vec2{})
	in := newFakeInput()
	in.keys[ebiten.KeyEscape] = true
	in.keys[ebiten.KeyS] = true
	frame(e, in, nil)

	if !GetOrCreateSettings(e).Quitting {
		t.Fatal("Expected Escape to quit")
	}
	if l.IsThrusting() {
		t.Error("Expected no lander input on the quitting frame")
	}

	before := l.GetPosition()
	WithSessionCheck(UpdatePhysics)(e)
	if l.GetPosition() != before {
		t.Error("Expected physics skipped after quit")
	}
}
