package components

import (
	gomath "math"

	"github.com/cugone/LunarLander/assets/animations"
	cfg "github.com/cugone/LunarLander/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// zeroEpsilon is the tolerance under which an orientation delta is snapped to zero.
const zeroEpsilon = 1e-6

type LanderData struct {
	FuelPounds             float64
	Thrusting              bool
	EngineFiring           bool // thrust impulse was applied during the last Update
	RotationMode           cfg.RotationMode
	RotationSpeedDegrees   float64
	RotationTorque         float64
	ThrustForceKiloNewtons float64
	TranslateForce         float64
	DeltaOrientation       float64 // radians, integrated per second in delta mode

	ThrustSprite  *animations.AnimatedSprite
	IdleSprite    *animations.AnimatedSprite
	CurrentSprite *animations.AnimatedSprite

	Transform ebiten.GeoM

	Touchdown      cfg.TouchdownState
	TouchdownSpeed float64
}

func (l *LanderData) HasFuel() bool {
	return l.FuelPounds > 0
}

// BurnFuel removes pounds of fuel, never going below empty.
func (l *LanderData) BurnFuel(pounds float64) {
	l.FuelPounds = gomath.Max(0, l.FuelPounds-pounds)
}

func (l *LanderData) BeginThrust() {
	l.Thrusting = true
}

func (l *LanderData) EndThrust() {
	if l.Thrusting {
		l.Thrusting = false
		l.CurrentSprite = l.IdleSprite
		if l.ThrustSprite != nil {
			l.ThrustSprite.Pause()
		}
	}
}

// EndFrame clears the per-frame rotation input and drops thrust that can no
// longer be sustained.
func (l *LanderData) EndFrame() {
	l.DeltaOrientation = 0
	if !l.Thrusting || !l.HasFuel() {
		l.EndThrust()
	}
}

// AddDeltaOrientation accumulates a rotation step of RotationSpeedDegrees in
// the given direction (-1 left, +1 right).
func (l *LanderData) AddDeltaOrientation(direction float64) {
	l.DeltaOrientation += direction * RadiansFromDegrees(l.RotationSpeedDegrees)
	if gomath.Abs(l.DeltaOrientation) < zeroEpsilon {
		l.DeltaOrientation = 0
	}
}

// SelectSprite makes the thrust sprite current while thrust can be sustained
// and the idle sprite otherwise.
func (l *LanderData) SelectSprite() {
	if l.Thrusting && l.HasFuel() {
		l.CurrentSprite = l.ThrustSprite
		if l.ThrustSprite != nil {
			l.ThrustSprite.Resume()
		}
		return
	}
	l.CurrentSprite = l.IdleSprite
}

// SpriteState reports which sprite is current.
func (l *LanderData) SpriteState() cfg.SpriteStateID {
	if l.CurrentSprite != nil && l.CurrentSprite == l.ThrustSprite {
		return cfg.SpriteThrust
	}
	return cfg.SpriteIdle
}

func RadiansFromDegrees(d float64) float64 { return d * gomath.Pi / 180 }
func DegreesFromRadians(r float64) float64 { return r * 180 / gomath.Pi }

var Lander = donburi.NewComponentType[LanderData]()
