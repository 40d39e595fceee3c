package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sphere builds a UV sphere centered on the origin. Texture coordinates run
// left to right around the equator as seen from outside, with v = 0 at the
// north pole. Triangles wind counter-clockwise from outside.
func Sphere(radius float32, slices, stacks int) *Mesh {
	slices = max(slices, 3)
	stacks = max(stacks, 2)

	count := (stacks + 1) * (slices + 1)
	m := &Mesh{
		Name:               "Sphere",
		Vertices:           make([]mgl32.Vec3, 0, count),
		Normals:            make([]mgl32.Vec3, 0, count),
		TextureCoordinates: make([]mgl32.Vec2, 0, count),
		Indices:            make([]uint32, 0, stacks*slices*6),
	}

	for i := 0; i <= stacks; i++ {
		v := float32(i) / float32(stacks)
		phi := v * math32.Pi
		sinPhi, cosPhi := math32.Sin(phi), math32.Cos(phi)

		for j := 0; j <= slices; j++ {
			u := float32(j) / float32(slices)
			theta := u * 2 * math32.Pi

			normal := mgl32.Vec3{
				sinPhi * math32.Cos(theta),
				cosPhi,
				-sinPhi * math32.Sin(theta),
			}
			m.Vertices = append(m.Vertices, normal.Mul(radius))
			m.Normals = append(m.Normals, normal)
			m.TextureCoordinates = append(m.TextureCoordinates, mgl32.Vec2{u, v})
		}
	}

	row := uint32(slices + 1)
	for i := uint32(0); i < uint32(stacks); i++ {
		for j := uint32(0); j < uint32(slices); j++ {
			a := i*row + j
			b := (i+1)*row + j
			c := b + 1
			d := a + 1
			m.Indices = append(m.Indices, a, b, c, a, c, d)
		}
	}

	return m
}
