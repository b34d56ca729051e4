package systems

import (
	"fmt"
	"image/color"

	"github.com/cugone/LunarLander/components"
	cfg "github.com/cugone/LunarLander/config"
	"github.com/cugone/LunarLander/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// LanderOutline returns the corners of the lander's oriented bounding box
// in world space, clockwise from the top left.
func LanderOutline(l Lander) []math.Vec2 {
	return transformPoints(l.GetTransform(),
		math.Vec2{X: -0.5, Y: -0.5},
		math.Vec2{X: 0.5, Y: -0.5},
		math.Vec2{X: 0.5, Y: 0.5},
		math.Vec2{X: -0.5, Y: 0.5},
	)
}

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.DebugRender {
		return
	}
	view, ok := viewMatrix(e, screen)
	if !ok {
		return
	}

	// Collision objects
	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		offset := *components.SpaceOffset.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvLander) {
				c = color.RGBA{0, 0, 255, 255}
			}
			x, y := obj.X-offset.X, obj.Y-offset.Y
			corners := transformPoints(view,
				math.Vec2{X: x, Y: y},
				math.Vec2{X: x + obj.W, Y: y},
				math.Vec2{X: x + obj.W, Y: y + obj.H},
				math.Vec2{X: x, Y: y + obj.H},
			)
			strokePolygon(screen, corners, 1, c)
		}
	}

	tags.Lander.Each(e.World, func(entry *donburi.Entry) {
		l := NewLander(entry)
		outline := LanderOutline(l)
		strokePolygon(screen, transformPoints(view, outline...), 1, cfg.Green)
	})

	if l, ok := FirstLander(e.World); ok {
		v := l.GetVelocity()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"TPS %.0f  pos %.1f,%.1f  vel %.2f,%.2f  rot %.1f  mode %s  mouse %t",
			ebiten.ActualTPS(), l.GetPosition().X, l.GetPosition().Y, v.X, v.Y,
			l.GetOrientationDegrees(), l.data().RotationMode, l.IsMouseLocked(),
		), 4, screen.Bounds().Dy()-16)
	}
}
