package assets

import (
	"testing"

	"github.com/yohamta/donburi/features/math"
)

func TestLoadDefaultLevel(t *testing.T) {
	level, err := NewLevelLoader().LoadLevel(DefaultLevel)
	if err != nil {
		t.Fatalf("Failed to load %s: %v", DefaultLevel, err)
	}

	if level.Width != 2048 || level.Height != 1024 {
		t.Errorf("Expected 2048x1024, got %dx%d", level.Width, level.Height)
	}
	if len(level.Ground) != 5 {
		t.Fatalf("Expected 5 ground rectangles, got %d", len(level.Ground))
	}
	if !level.HasSpawn || level.LanderSpawn != (math.Vec2{}) {
		t.Errorf("Expected spawn at the origin, got %v (has spawn %v)", level.LanderSpawn, level.HasSpawn)
	}
	if level.Origin != (math.Vec2{X: -1024, Y: -820}) {
		t.Errorf("Expected map origin (-1024, -820), got %v", level.Origin)
	}

	pads := 0
	for _, g := range level.Ground {
		if g.Pad {
			pads++
		}
	}
	if pads != 1 {
		t.Errorf("Expected one pad, got %d", pads)
	}

	// Largest first so the pad draws on top
	last := level.Ground[len(level.Ground)-1]
	if !last.Pad {
		t.Errorf("Expected the pad to sort last, got %+v", last)
	}
	if last.X > 0 || last.X+last.Width < 0 || last.Y <= 0 || last.Y > 90 {
		t.Errorf("Expected the pad just below the spawn, got %+v", last)
	}
}

func TestLoadMissingLevel(t *testing.T) {
	if _, err := NewLevelLoader().LoadLevel("levels/missing.tmx"); err == nil {
		t.Error("Expected an error for a missing level")
	}
}

func TestSurfaceY(t *testing.T) {
	level, err := NewLevelLoader().LoadLevel(DefaultLevel)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		x, want float64
	}{
		{0, 72},
		{776, -120},
		{-924, 80},
		{-2000, 204},
	}
	for _, tt := range tests {
		if got := level.SurfaceY(tt.x); got != tt.want {
			t.Errorf("SurfaceY(%f): expected %f, got %f", tt.x, tt.want, got)
		}
	}
}
