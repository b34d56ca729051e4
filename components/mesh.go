package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Primitive selects the index pattern added by AddIndices.
type Primitive int

const (
	PrimitiveTriangle Primitive = iota
	PrimitiveQuad
)

// MeshData builds an indexed triangle list in local space. SrcX/SrcY of the
// vertices hold normalized texture coordinates; the renderer scales them to
// the source image.
type MeshData struct {
	Vertices []ebiten.Vertex
	Indices  []uint16
	Material string

	r, g, b, a float32
	uv         math.Vec2
	building   bool
}

func (m *MeshData) Begin() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
	m.r, m.g, m.b, m.a = 1, 1, 1, 1
	m.uv = math.Vec2{}
	m.building = true
}

func (m *MeshData) SetColor(c color.Color) {
	r, g, b, a := c.RGBA()
	m.r = float32(r) / 0xffff
	m.g = float32(g) / 0xffff
	m.b = float32(b) / 0xffff
	m.a = float32(a) / 0xffff
}

func (m *MeshData) SetUV(uv math.Vec2) {
	m.uv = uv
}

func (m *MeshData) AddVertex(pos math.Vec2) {
	m.Vertices = append(m.Vertices, ebiten.Vertex{
		DstX:   float32(pos.X),
		DstY:   float32(pos.Y),
		SrcX:   float32(m.uv.X),
		SrcY:   float32(m.uv.Y),
		ColorR: m.r,
		ColorG: m.g,
		ColorB: m.b,
		ColorA: m.a,
	})
}

// AddIndices indexes the most recently added vertices as one primitive.
func (m *MeshData) AddIndices(p Primitive) {
	n := len(m.Vertices)
	switch p {
	case PrimitiveTriangle:
		if n < 3 {
			return
		}
		base := uint16(n - 3)
		m.Indices = append(m.Indices, base, base+1, base+2)
	case PrimitiveQuad:
		if n < 4 {
			return
		}
		base := uint16(n - 4)
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
}

func (m *MeshData) End(material string) {
	m.Material = material
	m.building = false
}

// Ready reports whether a finished mesh is available to draw.
func (m *MeshData) Ready() bool {
	return !m.building && len(m.Indices) > 0
}

var Mesh = donburi.NewComponentType[MeshData]()
