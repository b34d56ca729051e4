package main

import (
	"fmt"
	"image"
	"os"

	"github.com/cugone/LunarLander/config"
	"github.com/cugone/LunarLander/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a LanderScene to ebiten's loop.
type Game struct {
	bounds image.Rectangle
	scene  *scenes.LanderScene
}

func NewGame(scene *scenes.LanderScene) (*Game, error) {
	if err := scene.Initialize(); err != nil {
		return nil, err
	}
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}, nil
}

func (g *Game) Update() error {
	g.scene.BeginFrame()
	g.scene.Update(config.DeltaSeconds())
	g.scene.EndFrame()
	if g.scene.Quitting() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Render(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
