package animations

import (
	"image"

	"github.com/cugone/LunarLander/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/features/math"
)

// SpriteSheet is a grid of equally sized frames on one image. The image is
// shared; sprites only hold a pointer to the sheet.
type SpriteSheet struct {
	Image       *ebiten.Image
	Columns     int
	Rows        int
	FrameWidth  int
	FrameHeight int
}

// UVRect is a normalized texture-coordinate rectangle.
type UVRect struct {
	Min math.Vec2
	Max math.Vec2
}

func (s *SpriteSheet) Width() int  { return s.Columns * s.FrameWidth }
func (s *SpriteSheet) Height() int { return s.Rows * s.FrameHeight }

// FrameCount returns the number of cells on the sheet.
func (s *SpriteSheet) FrameCount() int {
	return s.Columns * s.Rows
}

// TexCoords returns the normalized rectangle of frame index, counted row-major.
func (s *SpriteSheet) TexCoords(index int) UVRect {
	if s.Columns <= 0 || s.Rows <= 0 {
		return UVRect{Max: math.Vec2{X: 1, Y: 1}}
	}
	col := index % s.Columns
	row := index / s.Columns
	du := 1.0 / float64(s.Columns)
	dv := 1.0 / float64(s.Rows)
	return UVRect{
		Min: math.Vec2{X: float64(col) * du, Y: float64(row) * dv},
		Max: math.Vec2{X: float64(col+1) * du, Y: float64(row+1) * dv},
	}
}

// SrcRect returns the pixel rectangle of frame index.
func (s *SpriteSheet) SrcRect(index int) image.Rectangle {
	col := index % s.Columns
	row := index / s.Columns
	sx := col * s.FrameWidth
	sy := row * s.FrameHeight
	return image.Rect(sx, sy, sx+s.FrameWidth, sy+s.FrameHeight)
}

// Desc describes an animated sprite on a sheet.
type Desc struct {
	Material        string
	Sheet           *SpriteSheet
	FrameLength     int // number of frames played
	StartIndex      int // first sheet cell
	PlaybackMode    config.PlaybackMode
	DurationSeconds float64 // time to play all frames once
}

// AnimatedSprite plays a run of sheet cells over time.
type AnimatedSprite struct {
	material string
	sheet    *SpriteSheet
	first    int
	length   int
	mode     config.PlaybackMode
	duration float64
	elapsed  float64
	paused   bool
	Looped   bool
}

func NewAnimatedSprite(desc Desc) *AnimatedSprite {
	length := desc.FrameLength
	if length < 1 {
		length = 1
	}
	return &AnimatedSprite{
		material: desc.Material,
		sheet:    desc.Sheet,
		first:    desc.StartIndex,
		length:   length,
		mode:     desc.PlaybackMode,
		duration: desc.DurationSeconds,
	}
}

// NewAnimatedSpriteFromDef builds a sprite from a config animation definition.
func NewAnimatedSpriteFromDef(material string, sheet *SpriteSheet, def config.AnimationDef) *AnimatedSprite {
	return NewAnimatedSprite(Desc{
		Material:        material,
		Sheet:           sheet,
		FrameLength:     def.FrameLength,
		StartIndex:      def.StartIndex,
		PlaybackMode:    def.PlaybackMode,
		DurationSeconds: def.DurationSeconds,
	})
}

func (a *AnimatedSprite) Update(deltaSeconds float64) {
	if a.paused || deltaSeconds <= 0 {
		return
	}
	a.elapsed += deltaSeconds
	if a.duration <= 0 {
		return
	}
	if a.elapsed >= a.duration {
		switch a.mode {
		case config.PlaybackLooping:
			a.Looped = true
			for a.elapsed >= a.duration {
				a.elapsed -= a.duration
			}
		case config.PlaybackPlayToEnd:
			// Stay on last frame
			a.elapsed = a.duration
		}
	}
}

// Frame returns the current sheet cell index.
func (a *AnimatedSprite) Frame() int {
	if a.length == 1 || a.duration <= 0 {
		return a.first
	}
	frameDuration := a.duration / float64(a.length)
	offset := int(a.elapsed / frameDuration)
	if offset >= a.length {
		offset = a.length - 1
	}
	return a.first + offset
}

func (a *AnimatedSprite) CurrentTexCoords() UVRect {
	if a.sheet == nil {
		return UVRect{Max: math.Vec2{X: 1, Y: 1}}
	}
	return a.sheet.TexCoords(a.Frame())
}

// FrameDimensions returns the size of one frame in pixels.
func (a *AnimatedSprite) FrameDimensions() math.Vec2 {
	if a.sheet == nil {
		return math.Vec2{X: 1, Y: 1}
	}
	return math.Vec2{X: float64(a.sheet.FrameWidth), Y: float64(a.sheet.FrameHeight)}
}

func (a *AnimatedSprite) Sheet() *SpriteSheet { return a.sheet }
func (a *AnimatedSprite) Material() string    { return a.material }
func (a *AnimatedSprite) IsPaused() bool      { return a.paused }

func (a *AnimatedSprite) Pause()  { a.paused = true }
func (a *AnimatedSprite) Resume() { a.paused = false }

func (a *AnimatedSprite) Restart() {
	a.elapsed = 0
	a.Looped = false
}
