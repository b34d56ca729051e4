package systems

import (
	"github.com/cugone/LunarLander/assets"
	"github.com/cugone/LunarLander/assets/animations"
	"github.com/cugone/LunarLander/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// testSheet has the lander layout without an image so tests need no GPU.
func testSheet() *animations.SpriteSheet {
	return &animations.SpriteSheet{Columns: 3, Rows: 1, FrameWidth: 16, FrameHeight: 16}
}

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// newTestScene builds a space with a pad floor at y=200, a camera and a lander at pos.
func newTestScene(pos math.Vec2) (*ecs.ECS, Lander) {
	e := newTestECS()
	factory.CreateSpace(e, math.Vec2{X: 256, Y: 256}, 1024, 1024, 16, 16)
	factory.CreateGround(e, assets.GroundRect{X: 0, Y: 200, Width: 400, Height: 50, Pad: true})
	factory.CreateCamera(e)
	return e, NewLander(factory.CreateLander(e, pos, testSheet()))
}

type fakeInput struct {
	keys    map[ebiten.Key]bool
	cursorX int
	cursorY int
	wheel   float64
}

func newFakeInput() *fakeInput {
	return &fakeInput{keys: make(map[ebiten.Key]bool)}
}

func (f *fakeInput) IsKeyPressed(key ebiten.Key) bool { return f.keys[key] }

func (f *fakeInput) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID { return ids }

func (f *fakeInput) IsStandardGamepadButtonPressed(ebiten.GamepadID, ebiten.StandardGamepadButton) bool {
	return false
}

func (f *fakeInput) CursorPosition() (int, int) { return f.cursorX, f.cursorY }

func (f *fakeInput) Wheel() (float64, float64) { return 0, f.wheel }

type fakeUI struct {
	keyboard bool
	mouse    bool
	toggles  int
}

func (u *fakeUI) WantsKeyboardCapture() bool { return u.keyboard }
func (u *fakeUI) WantsMouseCapture() bool    { return u.mouse }
func (u *fakeUI) ToggleOptionsWindow()       { u.toggles++ }

type fixedRand struct {
	v float64
}

func (r fixedRand) Float64() float64 { return r.v }
