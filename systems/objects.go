package systems

import (
	"github.com/cugone/LunarLander/components"
	"github.com/yohamta/donburi/features/math"
)

// syncObject centers the collider on p.
func syncObject(obj *components.ObjectData, p math.Vec2) {
	if obj == nil || obj.Object == nil {
		return
	}
	obj.X = p.X + obj.Offset.X - obj.W/2
	obj.Y = p.Y + obj.Offset.Y - obj.H/2
	obj.Update()
}

// objectCenter returns the center of the collider in world coordinates.
func objectCenter(obj *components.ObjectData) math.Vec2 {
	return math.Vec2{X: obj.X + obj.W/2 - obj.Offset.X, Y: obj.Y + obj.H/2 - obj.Offset.Y}
}
