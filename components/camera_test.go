package components

import (
	gomath "math"
	"testing"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/features/math"
)

func TestZoomClampedToRange(t *testing.T) {
	c := CameraData{Zoom: 1}
	c.SetZoomLevelRange(1, 5)

	c.SetZoomLevel(10)
	if c.Zoom != 5 {
		t.Errorf("Expected zoom clamped to 5, got %f", c.Zoom)
	}
	c.SetZoomLevel(0.1)
	if c.Zoom != 1 {
		t.Errorf("Expected zoom clamped to 1, got %f", c.Zoom)
	}

	c.SetZoomLevelRange(3, 2)
	if c.ZoomMin != 2 || c.ZoomMax != 3 {
		t.Errorf("Expected swapped range [2, 3], got [%f, %f]", c.ZoomMin, c.ZoomMax)
	}
	if c.Zoom != 2 {
		t.Errorf("Expected zoom re-clamped to 2, got %f", c.Zoom)
	}
}

func TestZoomToEasesWithinRange(t *testing.T) {
	c := CameraData{Zoom: 2}
	c.SetZoomLevelRange(1, 5)
	c.ZoomTo(8, func(from, to float64) *gween.Tween {
		return gween.New(float32(from), float32(to), 1, ease.Linear)
	})
	if c.ZoomTarget != 5 {
		t.Fatalf("Expected target clamped to 5, got %f", c.ZoomTarget)
	}
	zoom, _ := c.ZoomTween.Update(0.5)
	if zoom != 3.5 {
		t.Errorf("Expected halfway zoom 3.5, got %f", zoom)
	}
}

func TestViewMatrixCentersCamera(t *testing.T) {
	c := CameraData{Zoom: 2, Position: math.Vec2{X: 100, Y: 50}}

	m := c.ViewMatrix(640, 360)
	x, y := m.Apply(100, 50)
	if !almostEqual(x, 320) || !almostEqual(y, 180) {
		t.Errorf("Expected camera position at screen center, got (%f, %f)", x, y)
	}

	x, y = m.Apply(110, 50)
	if !almostEqual(x, 340) || !almostEqual(y, 180) {
		t.Errorf("Expected zoomed offset at (340, 180), got (%f, %f)", x, y)
	}
}

func TestScreenToWorldInvertsView(t *testing.T) {
	c := CameraData{Zoom: 3, Position: math.Vec2{X: -40, Y: 25}}
	c.SetRotationDegrees(30)

	m := c.ViewMatrix(640, 360)
	sx, sy := m.Apply(12, -7)
	w := c.ScreenToWorld(sx, sy, 640, 360)
	if gomath.Abs(w.X-12) > 1e-6 || gomath.Abs(w.Y+7) > 1e-6 {
		t.Errorf("Expected world (12, -7), got (%f, %f)", w.X, w.Y)
	}
}

func TestShakeDoesNotMoveCameraPose(t *testing.T) {
	c := CameraData{Zoom: 1}
	c.ShakeOffset = math.Vec2{X: 5, Y: -5}
	c.ShakeAngle = 0.1

	if c.Position != (math.Vec2{}) || c.Rotation != 0 {
		t.Error("Shake must not change camera position or rotation")
	}
	m := c.ViewMatrix(100, 100)
	x, y := m.Apply(0, 0)
	if almostEqual(x, 50) && almostEqual(y, 50) {
		t.Error("Expected shake to offset the view")
	}
}

func TestScreenToWorldIgnoresShake(t *testing.T) {
	c := CameraData{Zoom: 2, Position: math.Vec2{X: 30, Y: -10}}
	c.ShakeOffset = math.Vec2{X: 12, Y: -8}
	c.ShakeAngle = 0.05

	w := c.ScreenToWorld(320, 180, 640, 360)
	if !almostEqual(w.X, 30) || !almostEqual(w.Y, -10) {
		t.Errorf("Expected screen center at the camera position (30, -10), got (%f, %f)", w.X, w.Y)
	}
}
