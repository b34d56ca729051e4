package systems

import (
	"fmt"
	"image/color"

	"github.com/cugone/LunarLander/components"
	cfg "github.com/cugone/LunarLander/config"
	"github.com/cugone/LunarLander/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need the v1 API
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Altitude returns the distance from the bottom of the lander's collider to
// the ground below it.
func Altitude(e *ecs.ECS, l Lander) float64 {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return 0
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return 0
	}
	p := l.GetPosition()
	bottom := p.Y + cfg.Lander.ColliderHalfHeight
	return level.SurfaceY(p.X) - bottom
}

// DrawHUD renders fuel, flight data, touchdown status and camera locks in
// screen space.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if !fonts.HUD.Loaded() {
		return
	}
	l, ok := FirstLander(e.World)
	if !ok {
		return
	}
	settings := GetOrCreateSettings(e)
	face := fonts.HUD.Get()
	margin := cfg.HUD.Margin
	line := cfg.HUD.LineHeight

	// Fuel bar
	ratio := l.FuelPounds() / cfg.Lander.InitialFuelPounds
	if ratio > 1 {
		ratio = 1
	}
	vector.FillRect(screen,
		float32(margin), float32(margin),
		float32(cfg.HUD.FuelBarWidth), float32(cfg.HUD.FuelBarHeight),
		cfg.HUD.FuelBgColor, false)
	vector.FillRect(screen,
		float32(margin), float32(margin),
		float32(cfg.HUD.FuelBarWidth*ratio), float32(cfg.HUD.FuelBarHeight),
		cfg.HUD.FuelFgColor, false)

	x := int(margin)
	y := int(margin + cfg.HUD.FuelBarHeight + line)
	v := l.GetVelocity()
	lines := []string{
		fmt.Sprintf("FUEL %.2f lb", l.FuelPounds()),
		fmt.Sprintf("ALT  %.1f", Altitude(e, l)),
		fmt.Sprintf("H SPD %.1f  V SPD %.1f", v.X, v.Y),
		fmt.Sprintf("ANGLE %.1f", NormalizeDegrees(l.GetOrientationDegrees())),
	}
	for i, s := range lines {
		text.Draw(screen, s, face, x, y+i*int(line), cfg.HUD.TextColor)
	}

	lockLine := fmt.Sprintf("CAM POS %s  CAM ROT %s", onOff(settings.LockCameraPosition), onOff(settings.LockCameraRotation))
	text.Draw(screen, lockLine, fonts.HUDMono.Get(), x, screen.Bounds().Dy()-int(margin), cfg.HUD.TextColor)

	switch l.Touchdown() {
	case cfg.Landed:
		drawCentered(screen, "LANDED", cfg.HUD.LandedColor)
	case cfg.Crashed:
		drawCentered(screen, "CRASHED", cfg.HUD.CrashedColor)
	}
}

func drawCentered(screen *ebiten.Image, s string, c color.Color) {
	face := fonts.HUDLarge.Get()
	bounds := text.BoundString(face, s)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	y := screen.Bounds().Dy() / 3
	text.Draw(screen, s, face, x, y, c)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
