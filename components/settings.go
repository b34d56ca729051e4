package components

import (
	cfg "github.com/cugone/LunarLander/config"
	"github.com/yohamta/donburi"
)

// SettingsData holds the session's toggles. Options is the persisted copy;
// the lock flags here start from it and may diverge until saved.
type SettingsData struct {
	Options *cfg.GameOptions

	DebugRender        bool
	LockCameraRotation bool
	LockCameraPosition bool
	Quitting           bool

	DeltaSeconds float64 // simulation step for the current frame
	ScreenWidth  int
	ScreenHeight int
}

var Settings = donburi.NewComponentType[SettingsData]()
