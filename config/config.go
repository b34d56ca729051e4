package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in order.
const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
)

// LanderConfig contains all lander-related configuration values
type LanderConfig struct {
	// Fuel
	InitialFuelPounds float64
	FuelBurnPerSecond float64 // Pounds burned per second of main-engine thrust
	RCSBurnPerSecond  float64 // Pounds burned per second of lateral thrust

	// Thrust
	ThrustForceKiloNewtons float64
	TranslateForce         float64

	// Rotation
	RotationMode         RotationMode
	RotationSpeedDegrees float64 // Per RotateLeft/RotateRight call in delta mode
	RotationTorque       float64 // Torque magnitude in torque mode

	// Rigid body
	Mass           float64
	Inertia        float64
	LinearDamping  float64
	AngularDamping float64

	// Collider half extents, world units
	ColliderHalfWidth  float64
	ColliderHalfHeight float64

	// Sprite sheet layout
	SheetColumns int
	SheetRows    int

	// Animations
	ThrustAnimation AnimationDef
	IdleAnimation   AnimationDef
}

// AnimationDef describes an animated sprite on the lander sheet.
type AnimationDef struct {
	StartIndex      int
	FrameLength     int
	PlaybackMode    PlaybackMode
	DurationSeconds float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity     float64 // World units per second squared, +Y is down
	MaxSpeed    float64
	SkinWidth   float64 // Distance checked below the collider for ground contact
	SpaceCell   int
	SpaceMargin int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	ZoomMin      float64
	ZoomMax      float64
	ZoomInitial  float64
	ZoomStep     float64 // Zoom change per wheel notch
	ZoomDuration float32 // Seconds to ease to a new zoom level
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	CrashAmount   float64 // 0..1 shake amount on crash
	CrashDuration float32 // seconds
	ThrustAmount  float64 // 0..1 rumble while the main engine fires
}

// LandingConfig contains touchdown classification thresholds
type LandingConfig struct {
	SafeLandingSpeed        float64
	SafeLandingAngleDegrees float64
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin        float64
	LineHeight    float64
	FuelBarWidth  float64
	FuelBarHeight float64
	TextColor     color.RGBA
	LandedColor   color.RGBA
	CrashedColor  color.RGBA
	FuelBgColor   color.RGBA
	FuelFgColor   color.RGBA
}

// Config holds general game configuration
type Config struct {
	Title  string
	Width  int
	Height int
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Render bool // Start with the debug overlay visible
}

// Global configuration instances
var C *Config
var Lander LanderConfig
var Physics PhysicsConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var Landing LandingConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightGray  = color.RGBA{R: 211, G: 211, B: 211, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Red        = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Space      = color.RGBA{R: 6, G: 6, B: 16, A: 255}
	DarkGray   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	FuelOrange = color.RGBA{R: 255, G: 160, B: 40, A: 255}
)

// DeltaSeconds is the fixed simulation step.
func DeltaSeconds() float64 {
	return 1.0 / float64(C.TPS)
}

func init() {
	C = &Config{
		Title:  "Lunar Lander",
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Lander = LanderConfig{
		InitialFuelPounds: 1.0,
		FuelBurnPerSecond: 0.05, // 20 seconds of main engine
		RCSBurnPerSecond:  0.01,

		ThrustForceKiloNewtons: 10.0,
		TranslateForce:         2.5,

		RotationMode:         RotationDelta,
		RotationSpeedDegrees: 1.0,
		RotationTorque:       4.0,

		Mass:           1.0,
		Inertia:        1.0,
		LinearDamping:  0.0,
		AngularDamping: 1.0,

		ColliderHalfWidth:  5.0,
		ColliderHalfHeight: 5.0,

		SheetColumns: 3,
		SheetRows:    1,

		ThrustAnimation: AnimationDef{StartIndex: 1, FrameLength: 2, PlaybackMode: PlaybackLooping, DurationSeconds: 0.25},
		IdleAnimation:   AnimationDef{StartIndex: 0, FrameLength: 1, PlaybackMode: PlaybackPlayToEnd, DurationSeconds: 1.0 / 60.0},
	}

	Physics = PhysicsConfig{
		Gravity:     1.62 * 4, // Lunar gravity scaled to world units
		MaxSpeed:    200.0,
		SkinWidth:   1.0,
		SpaceCell:   16,
		SpaceMargin: 256,
	}

	Camera = CameraConfig{
		ZoomMin:      1.0,
		ZoomMax:      5.0,
		ZoomInitial:  2.0,
		ZoomStep:     0.25,
		ZoomDuration: 0.15,
	}

	ScreenShake = ScreenShakeConfig{
		CrashAmount:   1.0,
		CrashDuration: 0.6,
		ThrustAmount:  0.05,
	}

	Landing = LandingConfig{
		SafeLandingSpeed:        12.0,
		SafeLandingAngleDegrees: 10.0,
	}

	HUD = HUDConfig{
		Margin:        10,
		LineHeight:    16,
		FuelBarWidth:  100,
		FuelBarHeight: 8,
		TextColor:     White,
		LandedColor:   Green,
		CrashedColor:  Red,
		FuelBgColor:   DarkGray,
		FuelFgColor:   FuelOrange,
	}
}
