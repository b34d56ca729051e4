package systems

import (
	cfg "github.com/cugone/LunarLander/config"
	"github.com/yohamta/donburi/ecs"
)

// UICapture reports whether the UI layer owns the devices this frame.
type UICapture interface {
	WantsKeyboardCapture() bool
	WantsMouseCapture() bool
	ToggleOptionsWindow()
}

// UpdateControls dispatches the frame's actions to the session and the lander.
// Must run AFTER UpdateInput.
func UpdateControls(ui UICapture) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		settings := GetOrCreateSettings(e)

		if GetAction(input, cfg.ActionQuit).JustPressed {
			settings.Quitting = true
			return
		}

		if ui == nil || !ui.WantsKeyboardCapture() {
			handleDebugControls(e, ui)
		}

		lander, ok := FirstLander(e.World)
		if ok {
			if GetAction(input, cfg.ActionRotateLeft).Pressed {
				lander.RotateLeft()
			}
			if GetAction(input, cfg.ActionRotateRight).Pressed {
				lander.RotateRight()
			}
			if GetAction(input, cfg.ActionTranslateLeft).Pressed {
				lander.TranslateLeft()
			} else if GetAction(input, cfg.ActionTranslateRight).Pressed {
				lander.TranslateRight()
			}
			thrust := GetAction(input, cfg.ActionThrust)
			if thrust.Pressed {
				lander.BeginThrust()
			}
			if thrust.JustReleased {
				lander.EndThrust()
			}
		}

		if GetAction(input, cfg.ActionToggleCameraPosition).JustPressed {
			settings.LockCameraPosition = !settings.LockCameraPosition
		}
	}
}

func handleDebugControls(e *ecs.ECS, ui UICapture) {
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)

	if GetAction(input, cfg.ActionDebugRender).JustPressed {
		settings.DebugRender = !settings.DebugRender
	}
	if GetAction(input, cfg.ActionDebugMouseLock).JustPressed {
		if lander, ok := FirstLander(e.World); ok {
			lander.SetMouseLocked(!lander.IsMouseLocked())
		}
	}
	if GetAction(input, cfg.ActionDebugCameraRotation).JustPressed {
		settings.LockCameraRotation = !settings.LockCameraRotation
	}
	if GetAction(input, cfg.ActionDebugCameraPosition).JustPressed {
		settings.LockCameraPosition = !settings.LockCameraPosition
	}
	if GetAction(input, cfg.ActionDebugOptionsWindow).JustPressed && ui != nil {
		ui.ToggleOptionsWindow()
	}
}
