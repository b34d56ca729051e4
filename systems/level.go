package systems

import (
	"github.com/cugone/LunarLander/components"
	cfg "github.com/cugone/LunarLander/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// DrawGround renders the level's ground rectangles in world space.
func DrawGround(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := viewMatrix(e, screen)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}

	for _, g := range level.Ground {
		corners := transformPoints(view,
			math.Vec2{X: g.X, Y: g.Y},
			math.Vec2{X: g.X + g.Width, Y: g.Y},
			math.Vec2{X: g.X + g.Width, Y: g.Y + g.Height},
			math.Vec2{X: g.X, Y: g.Y + g.Height},
		)
		fill := cfg.LightGray
		if g.Pad {
			fill = cfg.Yellow
		}
		fillPolygon(screen, corners, fill)
		strokePolygon(screen, corners, 1, cfg.White)
	}
}
