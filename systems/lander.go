package systems

import (
	"image/color"

	"github.com/cugone/LunarLander/components"
	cfg "github.com/cugone/LunarLander/config"
	"github.com/cugone/LunarLander/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Lander is a handle over a lander entity. It carries no state of its own.
type Lander struct {
	entry *donburi.Entry
}

func NewLander(entry *donburi.Entry) Lander {
	return Lander{entry: entry}
}

// FirstLander returns the lander in the world, if one exists.
func FirstLander(w donburi.World) (Lander, bool) {
	entry, ok := tags.Lander.First(w)
	if !ok {
		return Lander{}, false
	}
	return NewLander(entry), true
}

func (l Lander) Entry() *donburi.Entry { return l.entry }

func (l Lander) data() *components.LanderData   { return components.Lander.Get(l.entry) }
func (l Lander) body() *components.PhysicsData  { return components.Physics.Get(l.entry) }
func (l Lander) object() *components.ObjectData { return components.Object.Get(l.entry) }

// BeginFrame is called before input is dispatched.
func (l Lander) BeginFrame() {}

func (l Lander) BeginThrust() { l.data().BeginThrust() }

func (l Lander) EndThrust() { l.data().EndThrust() }

func (l Lander) IsThrusting() bool { return l.data().Thrusting }

func (l Lander) HasFuel() bool { return l.data().HasFuel() }

func (l Lander) FuelPounds() float64 { return l.data().FuelPounds }

func (l Lander) SpriteState() cfg.SpriteStateID { return l.data().SpriteState() }

func (l Lander) RotateLeft() { l.rotate(-1) }

func (l Lander) RotateRight() { l.rotate(1) }

func (l Lander) rotate(direction float64) {
	d := l.data()
	switch d.RotationMode {
	case cfg.RotationTorque:
		l.body().ApplyTorque(direction, d.RotationTorque, cfg.DeltaSeconds())
	default:
		d.AddDeltaOrientation(direction)
	}
}

func (l Lander) TranslateLeft() { l.translate(-1) }

func (l Lander) TranslateRight() { l.translate(1) }

// translate fires the lateral thrusters for one tick.
func (l Lander) translate(direction float64) {
	d := l.data()
	if !d.HasFuel() {
		return
	}
	dt := cfg.DeltaSeconds()
	b := l.body()
	b.ApplyImpulse(b.Right().MulScalar(direction), d.TranslateForce*dt)
	d.BurnFuel(cfg.Lander.RCSBurnPerSecond * dt)
}

// Update fires the main engine, advances orientation in delta mode, plays
// the current sprite and rebuilds the mesh and model transform.
func (l Lander) Update(deltaSeconds float64) {
	d := l.data()
	b := l.body()

	d.SelectSprite()
	d.EngineFiring = false
	if d.Thrusting && d.HasFuel() {
		b.ApplyImpulse(b.Up(), d.ThrustForceKiloNewtons*deltaSeconds)
		d.BurnFuel(cfg.Lander.FuelBurnPerSecond * deltaSeconds)
		d.EngineFiring = true
	}

	if d.RotationMode == cfg.RotationDelta {
		b.Orientation += d.DeltaOrientation * deltaSeconds
	}

	if d.CurrentSprite != nil {
		d.CurrentSprite.Update(deltaSeconds)
	}

	l.rebuildMesh()
	l.rebuildTransform()
}

// EndFrame resets per-frame rotation input and drops unsustainable thrust.
func (l Lander) EndFrame() { l.data().EndFrame() }

func (l Lander) GetPosition() math.Vec2 { return l.body().GetPosition() }

// SetPosition moves the body and its collider.
func (l Lander) SetPosition(p math.Vec2) {
	l.body().SetPosition(p)
	if l.entry.HasComponent(components.Object) {
		syncObject(l.object(), p)
	}
}

func (l Lander) GetVelocity() math.Vec2 { return l.body().Velocity }

func (l Lander) GetOrientationRadians() float64 { return l.body().GetOrientation() }

func (l Lander) GetOrientationDegrees() float64 {
	return components.DegreesFromRadians(l.body().GetOrientation())
}

func (l Lander) GetTransform() ebiten.GeoM { return l.data().Transform }

func (l Lander) Touchdown() cfg.TouchdownState { return l.data().Touchdown }

// SetMouseLocked switches the lander between body-driven and cursor-driven motion.
func (l Lander) SetMouseLocked(locked bool) {
	if locked == l.IsMouseLocked() {
		return
	}
	if locked {
		l.entry.AddComponent(tags.MouseLocked)
		return
	}
	l.entry.RemoveComponent(tags.MouseLocked)
	b := l.body()
	b.Velocity = math.Vec2{}
	b.AngularVelocity = 0
}

func (l Lander) IsMouseLocked() bool { return l.entry.HasComponent(tags.MouseLocked) }

func (l Lander) rebuildMesh() {
	d := l.data()
	if d.CurrentSprite == nil || !l.entry.HasComponent(components.Mesh) {
		return
	}
	uv := d.CurrentSprite.CurrentTexCoords()
	mesh := components.Mesh.Get(l.entry)
	mesh.Begin()
	mesh.SetColor(color.White)
	mesh.SetUV(uv.Min)
	mesh.AddVertex(math.Vec2{X: -0.5, Y: -0.5})
	mesh.SetUV(math.Vec2{X: uv.Max.X, Y: uv.Min.Y})
	mesh.AddVertex(math.Vec2{X: 0.5, Y: -0.5})
	mesh.SetUV(uv.Max)
	mesh.AddVertex(math.Vec2{X: 0.5, Y: 0.5})
	mesh.SetUV(math.Vec2{X: uv.Min.X, Y: uv.Max.Y})
	mesh.AddVertex(math.Vec2{X: -0.5, Y: 0.5})
	mesh.AddIndices(components.PrimitiveQuad)
	mesh.End(d.CurrentSprite.Material())
}

// rebuildTransform maps the unit quad to the frame size, oriented and
// placed at the body.
func (l Lander) rebuildTransform() {
	d := l.data()
	b := l.body()
	var m ebiten.GeoM
	if d.CurrentSprite != nil {
		dims := d.CurrentSprite.FrameDimensions()
		m.Scale(dims.X, dims.Y)
	}
	m.Rotate(b.Orientation)
	m.Translate(b.Position.X, b.Position.Y)
	d.Transform = m
}

// UpdateLanders runs Update on every lander. It runs after physics and
// collisions so the transform matches the final position of the frame.
func UpdateLanders(e *ecs.ECS) {
	dt := GetOrCreateSettings(e).DeltaSeconds
	tags.Lander.Each(e.World, func(entry *donburi.Entry) {
		NewLander(entry).Update(dt)
	})
}

// EndFrameLanders runs the end-of-frame barrier on every lander.
func EndFrameLanders(e *ecs.ECS) {
	tags.Lander.Each(e.World, func(entry *donburi.Entry) {
		NewLander(entry).EndFrame()
	})
}
