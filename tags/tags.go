package tags

import "github.com/yohamta/donburi"

var (
	Lander = donburi.NewTag().SetName("Lander")
	Ground = donburi.NewTag().SetName("Ground")
	Pad    = donburi.NewTag().SetName("Pad")

	// MouseLocked marks a lander whose position follows the cursor instead
	// of its rigid body. Debug only.
	MouseLocked = donburi.NewTag().SetName("MouseLocked")
)

// Resolv tags for collision
const (
	ResolvSolid  = "solid"
	ResolvPad    = "pad"
	ResolvLander = "Lander"
)
