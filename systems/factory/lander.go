package factory

import (
	"github.com/cugone/LunarLander/archetypes"
	"github.com/cugone/LunarLander/assets"
	"github.com/cugone/LunarLander/assets/animations"
	"github.com/cugone/LunarLander/components"
	cfg "github.com/cugone/LunarLander/config"
	"github.com/cugone/LunarLander/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateLander spawns the lander at pos. Both sprites share sheet; the idle
// sprite starts current.
func CreateLander(ecs *ecs.ECS, pos math.Vec2, sheet *animations.SpriteSheet) *donburi.Entry {
	lander := archetypes.Lander.Spawn(ecs)

	thrust := animations.NewAnimatedSpriteFromDef(assets.LanderMaterial, sheet, cfg.Lander.ThrustAnimation)
	thrust.Pause()
	idle := animations.NewAnimatedSpriteFromDef(assets.LanderMaterial, sheet, cfg.Lander.IdleAnimation)

	components.Lander.SetValue(lander, components.LanderData{
		FuelPounds:             cfg.Lander.InitialFuelPounds,
		RotationMode:           cfg.Lander.RotationMode,
		RotationSpeedDegrees:   cfg.Lander.RotationSpeedDegrees,
		RotationTorque:         cfg.Lander.RotationTorque,
		ThrustForceKiloNewtons: cfg.Lander.ThrustForceKiloNewtons,
		TranslateForce:         cfg.Lander.TranslateForce,
		ThrustSprite:           thrust,
		IdleSprite:             idle,
		CurrentSprite:          idle,
	})

	components.Physics.SetValue(lander, components.PhysicsData{
		Position:       pos,
		Mass:           cfg.Lander.Mass,
		Inertia:        cfg.Lander.Inertia,
		LinearDamping:  cfg.Lander.LinearDamping,
		AngularDamping: cfg.Lander.AngularDamping,
		Gravity:        cfg.Physics.Gravity,
		MaxSpeed:       cfg.Physics.MaxSpeed,
	})

	w := cfg.Lander.ColliderHalfWidth * 2
	h := cfg.Lander.ColliderHalfHeight * 2
	offset := spaceOffset(ecs.World)
	obj := resolv.NewObject(pos.X+offset.X-w/2, pos.Y+offset.Y-h/2, w, h, tags.ResolvLander)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = lander
	components.Object.SetValue(lander, components.ObjectData{Object: obj, Offset: offset})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return lander
}
