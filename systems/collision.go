package systems

import (
	gomath "math"

	"github.com/cugone/LunarLander/components"
	cfg "github.com/cugone/LunarLander/config"
	"github.com/cugone/LunarLander/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves each lander collider to its integrated body
// position, stopping at ground, and classifies touchdowns.
func UpdateCollisions(e *ecs.ECS) {
	tags.Lander.Each(e.World, func(entry *donburi.Entry) {
		body := components.Physics.Get(entry)
		obj := components.Object.Get(entry)
		if entry.HasComponent(tags.MouseLocked) {
			syncObject(obj, body.Position)
			return
		}

		from := objectCenter(obj)
		dx := body.Position.X - from.X
		dy := body.Position.Y - from.Y

		obj.X += resolveHorizontalCollision(body, obj.Object, dx)
		impactSpeed := body.Velocity.Y
		moved, ground := resolveVerticalCollision(body, obj.Object, dy)
		obj.Y += moved
		obj.Update()

		body.Position = objectCenter(obj)
		updateTouchdown(e, components.Lander.Get(entry), body, ground, impactSpeed)
	})
}

// resolveHorizontalCollision returns how far the object may move along x.
func resolveHorizontalCollision(body *components.PhysicsData, object *resolv.Object, dx float64) float64 {
	if dx == 0 {
		return 0
	}
	hit := nearestSolid(object, dx, 0)
	if hit == nil {
		return dx
	}
	body.Velocity.X = 0
	if dx > 0 {
		return gomath.Max(0, hit.X-(object.X+object.W))
	}
	return gomath.Min(0, hit.X+hit.W-object.X)
}

// resolveVerticalCollision returns how far the object may move along y and
// the ground it rests on afterwards, if any.
func resolveVerticalCollision(body *components.PhysicsData, object *resolv.Object, dy float64) (float64, *resolv.Object) {
	checkDistance := dy
	if dy >= 0 {
		checkDistance += cfg.Physics.SkinWidth
	}

	hit := nearestSolid(object, 0, checkDistance)
	if hit == nil {
		return dy, nil
	}

	if dy < 0 {
		body.Velocity.Y = 0
		return gomath.Min(0, hit.Y+hit.H-object.Y), nil
	}

	body.Velocity.X = 0
	body.Velocity.Y = 0
	return gomath.Max(0, hit.Y-(object.Y+object.H)), hit
}

// nearestSolid returns the closest solid the object would overlap after
// moving by (dx, dy). The space check is a cell broadphase, so candidates
// are tested against the moved bounds.
func nearestSolid(object *resolv.Object, dx, dy float64) *resolv.Object {
	check := object.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return nil
	}

	var nearest *resolv.Object
	best := gomath.Inf(1)
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlaps(object.X+dx, object.Y+dy, object.W, object.H, solid) {
			continue
		}
		var distance float64
		switch {
		case dx > 0:
			distance = solid.X - (object.X + object.W)
		case dx < 0:
			distance = object.X - (solid.X + solid.W)
		case dy > 0:
			distance = solid.Y - (object.Y + object.H)
		default:
			distance = object.Y - (solid.Y + solid.H)
		}
		if distance < best {
			best = distance
			nearest = solid
		}
	}
	return nearest
}

func overlaps(x, y, w, h float64, o *resolv.Object) bool {
	return x < o.X+o.W && x+w > o.X && y < o.Y+o.H && y+h > o.Y
}

// isPad reports whether a ground collider belongs to a landing pad entity.
func isPad(ground *resolv.Object) bool {
	entry, ok := ground.Data.(*donburi.Entry)
	return ok && entry.Valid() && entry.HasComponent(tags.Pad)
}

// updateTouchdown classifies the first contact with ground. Only a slow,
// upright touchdown on a pad counts as landed.
func updateTouchdown(e *ecs.ECS, lander *components.LanderData, body *components.PhysicsData, ground *resolv.Object, impactSpeed float64) {
	if ground == nil {
		lander.Touchdown = cfg.Airborne
		return
	}
	if lander.Touchdown != cfg.Airborne {
		return
	}

	lander.TouchdownSpeed = gomath.Max(0, impactSpeed)
	body.AngularVelocity = 0

	tilt := gomath.Abs(NormalizeDegrees(components.DegreesFromRadians(body.Orientation)))
	safe := lander.TouchdownSpeed <= cfg.Landing.SafeLandingSpeed && tilt <= cfg.Landing.SafeLandingAngleDegrees
	if safe && isPad(ground) {
		lander.Touchdown = cfg.Landed
		return
	}
	lander.Touchdown = cfg.Crashed
	TriggerScreenShake(e, cfg.ScreenShake.CrashAmount, cfg.ScreenShake.CrashDuration)
}

// NormalizeDegrees maps an angle into (-180, 180].
func NormalizeDegrees(d float64) float64 {
	d = gomath.Mod(d, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}
