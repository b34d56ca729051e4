package components

import (
	gomath "math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Torque is an angular force applied for a limited time.
type Torque struct {
	Direction        float64 // +1 clockwise, -1 counter-clockwise
	Magnitude        float64
	RemainingSeconds float64
}

// PhysicsData is a 2D rigid body. +Y is down; orientation is in radians,
// clockwise positive.
type PhysicsData struct {
	Position        math.Vec2
	Velocity        math.Vec2
	Orientation     float64
	AngularVelocity float64

	Mass           float64
	Inertia        float64
	LinearDamping  float64
	AngularDamping float64
	Gravity        float64
	MaxSpeed       float64

	torques []Torque
}

// ApplyImpulse changes velocity immediately by magnitude/mass along direction.
// A zero direction is ignored.
func (b *PhysicsData) ApplyImpulse(direction math.Vec2, magnitude float64) {
	length := gomath.Hypot(direction.X, direction.Y)
	if length == 0 || magnitude == 0 {
		return
	}
	mass := b.Mass
	if mass <= 0 {
		mass = 1
	}
	scale := magnitude / (length * mass)
	b.Velocity = b.Velocity.Add(direction.MulScalar(scale))
}

// ApplyTorque queues a torque that acts for durationSeconds of simulated time.
func (b *PhysicsData) ApplyTorque(direction, magnitude, durationSeconds float64) {
	if direction == 0 || magnitude == 0 || durationSeconds <= 0 {
		return
	}
	b.torques = append(b.torques, Torque{
		Direction:        gomath.Copysign(1, direction),
		Magnitude:        magnitude,
		RemainingSeconds: durationSeconds,
	})
}

// PendingTorques returns the number of torques still acting on the body.
func (b *PhysicsData) PendingTorques() int {
	return len(b.torques)
}

// Update integrates gravity, torques and damping over deltaSeconds.
func (b *PhysicsData) Update(deltaSeconds float64) {
	if deltaSeconds <= 0 {
		return
	}

	inertia := b.Inertia
	if inertia <= 0 {
		inertia = 1
	}
	active := b.torques[:0]
	for _, t := range b.torques {
		applied := gomath.Min(t.RemainingSeconds, deltaSeconds)
		b.AngularVelocity += t.Direction * t.Magnitude * applied / inertia
		t.RemainingSeconds -= deltaSeconds
		if t.RemainingSeconds > 0 {
			active = append(active, t)
		}
	}
	b.torques = active

	b.Velocity.Y += b.Gravity * deltaSeconds

	if b.LinearDamping > 0 {
		b.Velocity = b.Velocity.MulScalar(1 / (1 + b.LinearDamping*deltaSeconds))
	}
	if b.AngularDamping > 0 {
		b.AngularVelocity /= 1 + b.AngularDamping*deltaSeconds
	}

	if b.MaxSpeed > 0 {
		if speed := gomath.Hypot(b.Velocity.X, b.Velocity.Y); speed > b.MaxSpeed {
			b.Velocity = b.Velocity.MulScalar(b.MaxSpeed / speed)
		}
	}

	b.Position = b.Position.Add(b.Velocity.MulScalar(deltaSeconds))
	b.Orientation += b.AngularVelocity * deltaSeconds
}

func (b *PhysicsData) GetPosition() math.Vec2 { return b.Position }

func (b *PhysicsData) SetPosition(p math.Vec2) { b.Position = p }

func (b *PhysicsData) GetOrientation() float64 { return b.Orientation }

func (b *PhysicsData) SetOrientation(radians float64) { b.Orientation = radians }

// Up returns the body's local up axis in world space.
func (b *PhysicsData) Up() math.Vec2 {
	return math.Vec2{X: gomath.Sin(b.Orientation), Y: -gomath.Cos(b.Orientation)}
}

// Right returns the body's local right axis in world space.
func (b *PhysicsData) Right() math.Vec2 {
	return math.Vec2{X: gomath.Cos(b.Orientation), Y: gomath.Sin(b.Orientation)}
}

var Physics = donburi.NewComponentType[PhysicsData]()
