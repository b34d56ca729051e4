package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObjectData is a collider. Offset translates world coordinates into the
// collision space, whose cells only cover non-negative coordinates.
type ObjectData struct {
	*resolv.Object
	Offset math.Vec2
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()

// SpaceOffset is the world-to-space offset stored with the collision space.
var SpaceOffset = donburi.NewComponentType[math.Vec2]()
