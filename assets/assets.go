package assets

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"sort"

	"github.com/cugone/LunarLander/assets/animations"
	"github.com/cugone/LunarLander/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// DefaultLevel is the level loaded at start-up.
const DefaultLevel = "levels/moon.tmx"

// LanderMaterial names the material the lander mesh is drawn with.
const LanderMaterial = "lander"

// GroundRect is a solid rectangle of terrain in world coordinates.
type GroundRect struct {
	X, Y, Width, Height float64
	Pad                 bool // marked as a landing pad in the level
}

// Level is a map placed so the lander spawn is the world origin. Origin is
// the world position of the map's top-left corner.
type Level struct {
	Name        string
	Width       int
	Height      int
	Origin      math.Vec2
	Ground      []GroundRect
	LanderSpawn math.Vec2
	HasSpawn    bool
}

type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

func (l *ImageLoader) MustLoadImage(p string) *ebiten.Image {
	if img, ok := l.cache[p]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(p)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", p, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", p, err))
	}

	l.cache[p] = img

	return img
}

var imageLoader = NewImageLoader()

// MustLoadLanderSheet returns the shared lander sprite sheet. Every call
// returns a sheet backed by the same cached image.
func MustLoadLanderSheet() *animations.SpriteSheet {
	img := imageLoader.MustLoadImage("images/lander.png")
	columns := config.Lander.SheetColumns
	rows := config.Lander.SheetRows
	return &animations.SpriteSheet{
		Image:       img,
		Columns:     columns,
		Rows:        rows,
		FrameWidth:  img.Bounds().Dx() / columns,
		FrameHeight: img.Bounds().Dy() / rows,
	}
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

func (l *LevelLoader) LoadLevel(levelPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(levelFS))
	if err != nil {
		return Level{}, fmt.Errorf("failed to load level %s: %w", levelPath, err)
	}
	return parseLevel(levelMap, path.Base(levelPath)), nil
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	level, err := l.LoadLevel(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

func parseLevel(levelMap *tiled.Map, name string) Level {
	level := Level{
		Name:   name,
		Ground: []GroundRect{},
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Ground":
			for _, o := range og.Objects {
				level.Ground = append(level.Ground, GroundRect{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
					Pad:    o.Properties.GetBool("pad"),
				})
			}
		case "LanderSpawn":
			if len(og.Objects) > 0 {
				level.LanderSpawn = math.Vec2{X: og.Objects[0].X, Y: og.Objects[0].Y}
				level.HasSpawn = true
			}
		}
	}

	recenter(&level)

	// Draw order: larger rectangles first so pads stay visible
	sort.SliceStable(level.Ground, func(i, j int) bool {
		return level.Ground[i].Width*level.Ground[i].Height > level.Ground[j].Width*level.Ground[j].Height
	})

	return level
}

// recenter moves the map so the spawn point sits at the origin.
func recenter(level *Level) {
	if !level.HasSpawn {
		return
	}
	shift := level.LanderSpawn
	for i := range level.Ground {
		level.Ground[i].X -= shift.X
		level.Ground[i].Y -= shift.Y
	}
	level.Origin = level.Origin.Sub(shift)
	level.LanderSpawn = math.Vec2{}
}

// SurfaceY returns the top of the highest ground rectangle spanning x, or
// the bottom of the map when nothing is below x.
func (lv *Level) SurfaceY(x float64) float64 {
	surface := lv.Origin.Y + float64(lv.Height)
	for _, g := range lv.Ground {
		if x >= g.X && x <= g.X+g.Width && g.Y < surface {
			surface = g.Y
		}
	}
	return surface
}
