package components

import (
	gomath "math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is an orthographic 2D camera. Position and Rotation are fully
// derived each frame; shake is kept apart so it never leaks into them.
type CameraData struct {
	Position math.Vec2
	Rotation float64 // radians
	Zoom     float64
	ZoomMin  float64
	ZoomMax  float64

	ZoomTarget float64
	ZoomTween  *gween.Tween

	ShakeOffset math.Vec2
	ShakeAngle  float64 // radians
}

func (c *CameraData) SetPosition(p math.Vec2) { c.Position = p }

func (c *CameraData) SetRotationDegrees(d float64) { c.Rotation = RadiansFromDegrees(d) }

func (c *CameraData) RotationDegrees() float64 { return DegreesFromRadians(c.Rotation) }

func (c *CameraData) SetZoomLevelRange(min, max float64) {
	if min > max {
		min, max = max, min
	}
	c.ZoomMin = min
	c.ZoomMax = max
	c.SetZoomLevel(c.Zoom)
}

// SetZoomLevel sets the zoom immediately, clamped to the zoom range.
func (c *CameraData) SetZoomLevel(z float64) {
	c.Zoom = c.clampZoom(z)
	c.ZoomTarget = c.Zoom
	c.ZoomTween = nil
}

// ZoomTo eases toward z, clamped to the zoom range.
func (c *CameraData) ZoomTo(z float64, tween func(from, to float64) *gween.Tween) {
	target := c.clampZoom(z)
	if target == c.ZoomTarget {
		return
	}
	c.ZoomTarget = target
	c.ZoomTween = tween(c.Zoom, target)
}

func (c *CameraData) clampZoom(z float64) float64 {
	if c.ZoomMax > 0 {
		z = gomath.Max(c.ZoomMin, gomath.Min(c.ZoomMax, z))
	}
	if z <= 0 {
		z = 1
	}
	return z
}

// ViewMatrix maps world coordinates to screen coordinates for a screen of
// the given size, camera centered, shake included.
func (c *CameraData) ViewMatrix(screenW, screenH int) ebiten.GeoM {
	return c.viewMatrix(c.Position.Add(c.ShakeOffset), c.Rotation+c.ShakeAngle, screenW, screenH)
}

// PoseMatrix is ViewMatrix without shake.
func (c *CameraData) PoseMatrix(screenW, screenH int) ebiten.GeoM {
	return c.viewMatrix(c.Position, c.Rotation, screenW, screenH)
}

func (c *CameraData) viewMatrix(pos math.Vec2, rotation float64, screenW, screenH int) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-pos.X, -pos.Y)
	m.Rotate(-rotation)
	m.Scale(c.Zoom, c.Zoom)
	m.Translate(float64(screenW)/2, float64(screenH)/2)
	return m
}

// ScreenToWorld converts a screen position to world coordinates using the
// camera pose, so a shaking view does not move the result.
func (c *CameraData) ScreenToWorld(sx, sy float64, screenW, screenH int) math.Vec2 {
	m := c.PoseMatrix(screenW, screenH)
	if !m.IsInvertible() {
		return c.Position
	}
	m.Invert()
	x, y := m.Apply(sx, sy)
	return math.Vec2{X: x, Y: y}
}

var Camera = donburi.NewComponentType[CameraData]()
