package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionQuit
	ActionRotateLeft
	ActionRotateRight
	ActionTranslateLeft
	ActionTranslateRight
	ActionThrust
	ActionToggleCameraPosition
	ActionDebugRender
	ActionDebugMouseLock
	ActionDebugCameraRotation
	ActionDebugCameraPosition
	ActionDebugOptionsWindow
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionRotateLeft: {
				Keys: []ebiten.Key{ebiten.KeyQ},
				// Left bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionRotateRight: {
				Keys: []ebiten.Key{ebiten.KeyE},
				// Right bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionTranslateLeft: {
				Keys: []ebiten.Key{ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionTranslateRight: {
				Keys: []ebiten.Key{ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionThrust: {
				Keys: []ebiten.Key{ebiten.KeyS},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionToggleCameraPosition: {
				Keys: []ebiten.Key{ebiten.KeyL},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionDebugRender: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
			ActionDebugMouseLock: {
				Keys: []ebiten.Key{ebiten.KeyF2},
			},
			ActionDebugCameraRotation: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionDebugCameraPosition: {
				Keys: []ebiten.Key{ebiten.KeyF},
			},
			ActionDebugOptionsWindow: {
				Keys: []ebiten.Key{ebiten.KeyF6},
			},
		},
	}
}
