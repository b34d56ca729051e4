package systems

import (
	"github.com/cugone/LunarLander/components"
	cfg "github.com/cugone/LunarLander/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputSource is the raw device state polled once per frame.
type InputSource interface {
	IsKeyPressed(key ebiten.Key) bool
	AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID
	IsStandardGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool
	CursorPosition() (int, int)
	Wheel() (float64, float64)
}

// EbitenInput reads devices through ebiten.
type EbitenInput struct{}

func (EbitenInput) IsKeyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }

func (EbitenInput) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	return ebiten.AppendGamepadIDs(ids)
}

func (EbitenInput) IsStandardGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return false
	}
	return ebiten.IsStandardGamepadButtonPressed(id, button)
}

func (EbitenInput) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (EbitenInput) Wheel() (float64, float64) { return ebiten.Wheel() }

// UpdateInput polls src and updates the Input singleton.
// Must run BEFORE UpdateControls in the system order.
func UpdateInput(src InputSource) func(*ecs.ECS) {
	// Reusable slice for gamepad IDs to avoid allocations
	var gamepadIDs []ebiten.GamepadID

	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}

		gamepadIDs = src.AppendGamepadIDs(gamepadIDs[:0])

		for actionID, binding := range cfg.Input.Bindings {
			for _, key := range binding.Keys {
				if src.IsKeyPressed(key) {
					input.Current[actionID] = true
				}
			}
			for _, gpID := range gamepadIDs {
				for _, btn := range binding.StandardGamepadButtons {
					if src.IsStandardGamepadButtonPressed(gpID, btn) {
						input.Current[actionID] = true
					}
				}
			}
		}

		input.CursorX, input.CursorY = src.CursorPosition()
		_, input.WheelY = src.Wheel()
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
