package mesh

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Shader attribute locations. Vertex shaders bind their inputs with
// matching layout(location = N) qualifiers.
const (
	AttributePosition          uint32 = 0
	AttributeTextureCoordinate uint32 = 1
	AttributeNormal            uint32 = 2
	AttributeColor             uint32 = 3
)

// Attribute describes one float attribute inside an interleaved vertex.
type Attribute struct {
	Location   uint32
	Components int32
	Offset     uintptr
}

// Layout describes an interleaved vertex format.
type Layout struct {
	Stride     int32
	Attributes []Attribute
}

// VertexPositionTexture is a homogeneous position with texture coordinates.
type VertexPositionTexture struct {
	Position           mgl32.Vec4
	TextureCoordinates mgl32.Vec2
}

// VertexPositionTextureNormal adds a surface normal.
type VertexPositionTextureNormal struct {
	Position           mgl32.Vec4
	TextureCoordinates mgl32.Vec2
	Normal             mgl32.Vec3
}

// VertexPositionColor is a homogeneous position with an RGBA color.
type VertexPositionColor struct {
	Position mgl32.Vec4
	Color    mgl32.Vec4
}

func PositionTextureLayout() Layout {
	var v VertexPositionTexture
	return Layout{
		Stride: int32(unsafe.Sizeof(v)),
		Attributes: []Attribute{
			{Location: AttributePosition, Components: 4, Offset: unsafe.Offsetof(v.Position)},
			{Location: AttributeTextureCoordinate, Components: 2, Offset: unsafe.Offsetof(v.TextureCoordinates)},
		},
	}
}

func PositionTextureNormalLayout() Layout {
	var v VertexPositionTextureNormal
	return Layout{
		Stride: int32(unsafe.Sizeof(v)),
		Attributes: []Attribute{
			{Location: AttributePosition, Components: 4, Offset: unsafe.Offsetof(v.Position)},
			{Location: AttributeTextureCoordinate, Components: 2, Offset: unsafe.Offsetof(v.TextureCoordinates)},
			{Location: AttributeNormal, Components: 3, Offset: unsafe.Offsetof(v.Normal)},
		},
	}
}

func PositionColorLayout() Layout {
	var v VertexPositionColor
	return Layout{
		Stride: int32(unsafe.Sizeof(v)),
		Attributes: []Attribute{
			{Location: AttributePosition, Components: 4, Offset: unsafe.Offsetof(v.Position)},
			{Location: AttributeColor, Components: 4, Offset: unsafe.Offsetof(v.Color)},
		},
	}
}
