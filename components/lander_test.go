package components

import (
	"testing"

	"github.com/cugone/LunarLander/assets/animations"
	cfg "github.com/cugone/LunarLander/config"
)

func newTestLanderData() *LanderData {
	sheet := &animations.SpriteSheet{Columns: 3, Rows: 1, FrameWidth: 16, FrameHeight: 16}
	thrust := animations.NewAnimatedSpriteFromDef("lander", sheet, cfg.Lander.ThrustAnimation)
	idle := animations.NewAnimatedSpriteFromDef("lander", sheet, cfg.Lander.IdleAnimation)
	return &LanderData{
		FuelPounds:           1.0,
		RotationSpeedDegrees: 1.0,
		ThrustSprite:         thrust,
		IdleSprite:           idle,
		CurrentSprite:        idle,
	}
}

func TestEndFrameWithoutThrustKeepsIdle(t *testing.T) {
	l := newTestLanderData()
	l.EndFrame()
	if l.SpriteState() != cfg.SpriteIdle {
		t.Errorf("Expected idle sprite, got %s", l.SpriteState())
	}
}

func TestBeginThenEndThrust(t *testing.T) {
	l := newTestLanderData()
	l.BeginThrust()
	l.SelectSprite()
	if l.SpriteState() != cfg.SpriteThrust {
		t.Fatalf("Expected thrust sprite while thrusting, got %s", l.SpriteState())
	}

	l.EndThrust()
	if l.Thrusting {
		t.Error("Expected thrusting to be false")
	}
	if l.SpriteState() != cfg.SpriteIdle {
		t.Errorf("Expected idle sprite, got %s", l.SpriteState())
	}
	if !l.ThrustSprite.IsPaused() {
		t.Error("Expected thrust sprite to be paused")
	}
}

func TestEndFrameDropsThrustWithoutFuel(t *testing.T) {
	l := newTestLanderData()
	l.BeginThrust()
	l.FuelPounds = 0
	l.SelectSprite()
	if l.SpriteState() != cfg.SpriteIdle {
		t.Errorf("Expected idle sprite without fuel, got %s", l.SpriteState())
	}

	l.EndFrame()
	if l.Thrusting {
		t.Error("Expected EndFrame to end thrust without fuel")
	}
}

func TestDeltaOrientationResetByEndFrame(t *testing.T) {
	l := newTestLanderData()
	l.AddDeltaOrientation(-1)
	l.AddDeltaOrientation(-1)
	if l.DeltaOrientation >= 0 {
		t.Fatalf("Expected negative delta, got %f", l.DeltaOrientation)
	}
	l.EndFrame()
	if l.DeltaOrientation != 0 {
		t.Errorf("Expected delta reset to 0, got %f", l.DeltaOrientation)
	}
}

func TestOpposingRotationsSnapToZero(t *testing.T) {
	l := newTestLanderData()
	l.AddDeltaOrientation(-1)
	l.AddDeltaOrientation(1)
	if l.DeltaOrientation != 0 {
		t.Errorf("Expected exact zero, got %g", l.DeltaOrientation)
	}
}

func TestBurnFuelNeverBelowZero(t *testing.T) {
	l := newTestLanderData()
	l.BurnFuel(0.4)
	if !almostEqual(l.FuelPounds, 0.6) {
		t.Errorf("Expected 0.6 lb, got %f", l.FuelPounds)
	}
	l.BurnFuel(5)
	if l.FuelPounds != 0 {
		t.Errorf("Expected empty tank, got %f", l.FuelPounds)
	}
	if l.HasFuel() {
		t.Error("Expected HasFuel false on empty tank")
	}
}
