package systems

import (
	"image/color"

	"github.com/cugone/LunarLander/components"
	"github.com/cugone/LunarLander/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var whiteImage *ebiten.Image

// Reused between frames to avoid allocations
var landerVertices []ebiten.Vertex

var drawTrianglesOp = &ebiten.DrawTrianglesOptions{Filter: ebiten.FilterNearest}

func getWhiteImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(1, 1)
		whiteImage.Fill(color.White)
	}
	return whiteImage
}

// viewMatrix returns the camera's world-to-screen transform for screen.
func viewMatrix(e *ecs.ECS, screen *ebiten.Image) (ebiten.GeoM, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return ebiten.GeoM{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.ViewMatrix(screen.Bounds().Dx(), screen.Bounds().Dy()), true
}

// DrawLander renders each lander mesh with its sprite sheet.
func DrawLander(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := viewMatrix(e, screen)
	if !ok {
		return
	}
	tags.Lander.Each(e.World, func(entry *donburi.Entry) {
		lander := components.Lander.Get(entry)
		mesh := components.Mesh.Get(entry)
		if !mesh.Ready() || lander.CurrentSprite == nil {
			return
		}
		sheet := lander.CurrentSprite.Sheet()
		if sheet == nil || sheet.Image == nil {
			return
		}

		// model then view
		mvp := lander.Transform
		mvp.Concat(view)

		sw := float32(sheet.Image.Bounds().Dx())
		sh := float32(sheet.Image.Bounds().Dy())
		landerVertices = append(landerVertices[:0], mesh.Vertices...)
		for i := range landerVertices {
			v := &landerVertices[i]
			x, y := mvp.Apply(float64(v.DstX), float64(v.DstY))
			v.DstX, v.DstY = float32(x), float32(y)
			v.SrcX *= sw
			v.SrcY *= sh
		}
		screen.DrawTriangles(landerVertices, mesh.Indices, sheet.Image, drawTrianglesOp)
	})
}

func transformPoints(m ebiten.GeoM, points ...math.Vec2) []math.Vec2 {
	out := make([]math.Vec2, len(points))
	for i, p := range points {
		x, y := m.Apply(p.X, p.Y)
		out[i] = math.Vec2{X: x, Y: y}
	}
	return out
}

func fillPolygon(dst *ebiten.Image, points []math.Vec2, c color.RGBA) {
	if len(points) < 3 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for i := 1; i < len(points); i++ {
		path.LineTo(float32(points[i].X), float32(points[i].Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	dst.DrawTriangles(vs, is, getWhiteImage(), &ebiten.DrawTrianglesOptions{AntiAlias: false})
}

func strokePolygon(dst *ebiten.Image, points []math.Vec2, width float32, c color.Color) {
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, c, false)
	}
}
