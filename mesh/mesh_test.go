package mesh

import (
	"strings"
	"testing"
	"testing/fstest"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadOBJ = `# textured quad
mtllib quad.mtl
o Quad
v -1 -1 0
v 1 -1 0
v 1 1 0
v -1 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
usemtl default
s off
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestLoadOBJ(t *testing.T) {
	t.Run("quad is fan triangulated with shared corners", func(t *testing.T) {
		model, err := LoadOBJ(strings.NewReader(quadOBJ), false)
		require.NoError(t, err)
		require.Len(t, model.Meshes, 1)

		m := model.Meshes[0]
		assert.Equal(t, "Quad", m.Name)
		assert.Len(t, m.Vertices, 4)
		assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices)
		assert.True(t, m.HasNormals())
		assert.True(t, m.HasTextureCoordinates())
		assert.Equal(t, mgl32.Vec2{1, 1}, m.TextureCoordinates[2])
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, m.Normals[3])
	})

	t.Run("flip uvs", func(t *testing.T) {
		model, err := LoadOBJ(strings.NewReader(quadOBJ), true)
		require.NoError(t, err)
		assert.Equal(t, mgl32.Vec2{0, 1}, model.Meshes[0].TextureCoordinates[0])
		assert.Equal(t, mgl32.Vec2{1, 0}, model.Meshes[0].TextureCoordinates[2])
	})

	t.Run("corner formats and negative indices", func(t *testing.T) {
		src := `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 2
f 1//1 2//1 3//1
f -3 -2 -1
`
		model, err := LoadOBJ(strings.NewReader(src), false)
		require.NoError(t, err)
		m := model.Meshes[0]

		// The position-only corners differ from the normal-carrying ones.
		assert.Len(t, m.Vertices, 6)
		assert.False(t, m.HasNormals(), "not every corner has a normal")
		assert.False(t, m.HasTextureCoordinates())
		assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, m.Indices)
	})

	t.Run("normals are normalized", func(t *testing.T) {
		src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nvn 0 0 2\nf 1//1 2//1 3//1\n"
		model, err := LoadOBJ(strings.NewReader(src), false)
		require.NoError(t, err)
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, model.Meshes[0].Normals[0])
	})

	t.Run("groups split meshes and empty groups are dropped", func(t *testing.T) {
		src := `
g empty
g first
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
o second
f 3 2 1
`
		model, err := LoadOBJ(strings.NewReader(src), false)
		require.NoError(t, err)
		require.Len(t, model.Meshes, 2)
		assert.Equal(t, "first", model.Meshes[0].Name)
		assert.Equal(t, "second", model.Meshes[1].Name)
		assert.Equal(t, []uint32{0, 1, 2}, model.Meshes[1].Indices)
	})

	t.Run("errors", func(t *testing.T) {
		cases := map[string]string{
			"no faces":         "v 0 0 0\n",
			"short vertex":     "v 0 0\n",
			"bad float":        "v 0 x 0\n",
			"zero index":       "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n",
			"out of range":     "v 0 0 0\nf 1 2 3\n",
			"two corners":      "v 0 0 0\nv 1 0 0\nf 1 2\n",
			"missing position": "v 0 0 0\nv 1 0 0\nv 0 1 0\nf /1 2 3\n",
			"too many slashes": "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1/1/1 2 3\n",
		}
		for name, src := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := LoadOBJ(strings.NewReader(src), false)
				assert.Error(t, err)
			})
		}

		_, err := LoadOBJ(strings.NewReader("# nothing\n"), false)
		assert.ErrorIs(t, err, ErrNoMeshes)

		_, err = LoadOBJ(strings.NewReader("v 0 0 0\nf 1 2 3\n"), false)
		assert.ErrorContains(t, err, "line 2")
	})
}

func TestLoadModel(t *testing.T) {
	fsys := fstest.MapFS{"models/quad.obj": {Data: []byte(quadOBJ)}}

	model, err := LoadModel(fsys, "models/quad.obj", false)
	require.NoError(t, err)
	first, err := model.First()
	require.NoError(t, err)
	assert.Equal(t, "Quad", first.Name)

	_, err = LoadModel(fsys, "models/missing.obj", false)
	assert.Error(t, err)

	_, err = (&Model{}).First()
	assert.ErrorIs(t, err, ErrNoMeshes)
}

func TestSphere(t *testing.T) {
	const radius = 2
	m := Sphere(radius, 16, 8)

	assert.Len(t, m.Vertices, 9*17)
	assert.Len(t, m.Indices, 8*16*6)
	assert.True(t, m.HasNormals())
	assert.True(t, m.HasTextureCoordinates())

	for i, v := range m.Vertices {
		assert.InDelta(t, radius, v.Len(), 1e-4)
		assert.InDelta(t, 1, m.Normals[i].Len(), 1e-4)
	}

	assert.Equal(t, mgl32.Vec2{0, 0}, m.TextureCoordinates[0])
	assert.InDelta(t, radius, m.Vertices[0].Y(), 1e-5, "v = 0 is the north pole")

	outward := 0
	for i := 0; i < len(m.Indices); i += 3 {
		a, b, c := m.Vertices[m.Indices[i]], m.Vertices[m.Indices[i+1]], m.Vertices[m.Indices[i+2]]
		faceNormal := b.Sub(a).Cross(c.Sub(a))
		if faceNormal.Len() < 1e-6 {
			continue // degenerate at the poles
		}
		centroid := a.Add(b).Add(c)
		assert.Greater(t, faceNormal.Dot(centroid), float32(0), "triangle %d winds inward", i/3)
		outward++
	}
	assert.Greater(t, outward, 0)

	t.Run("minimum tessellation", func(t *testing.T) {
		small := Sphere(1, 0, 0)
		assert.Len(t, small.Indices, 2*3*6)
	})
}

func TestVertexBuilders(t *testing.T) {
	m := Sphere(1, 4, 2)

	pt, err := m.PositionTextureVertices()
	require.NoError(t, err)
	require.Len(t, pt, len(m.Vertices))
	assert.Equal(t, m.Vertices[3].Vec4(1), pt[3].Position)
	assert.Equal(t, m.TextureCoordinates[3], pt[3].TextureCoordinates)

	ptn, err := m.PositionTextureNormalVertices()
	require.NoError(t, err)
	assert.Equal(t, m.Normals[5], ptn[5].Normal)

	pc := m.PositionColorVertices(mgl32.Vec4{1, 0, 0, 1})
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, pc[0].Color)

	bare := &Mesh{Name: "bare", Vertices: []mgl32.Vec3{{0, 0, 0}}}
	_, err = bare.PositionTextureVertices()
	assert.ErrorIs(t, err, ErrMissingAttribute)

	bare.TextureCoordinates = []mgl32.Vec2{{0, 0}}
	_, err = bare.PositionTextureNormalVertices()
	assert.ErrorIs(t, err, ErrMissingAttribute)
}

func TestLayouts(t *testing.T) {
	pt := PositionTextureLayout()
	assert.Equal(t, int32(24), pt.Stride)
	assert.Equal(t, []Attribute{
		{Location: AttributePosition, Components: 4, Offset: 0},
		{Location: AttributeTextureCoordinate, Components: 2, Offset: 16},
	}, pt.Attributes)

	ptn := PositionTextureNormalLayout()
	assert.Equal(t, int32(36), ptn.Stride)
	assert.Equal(t, uintptr(24), ptn.Attributes[2].Offset)

	pc := PositionColorLayout()
	assert.Equal(t, int32(unsafe.Sizeof(VertexPositionColor{})), pc.Stride)
	assert.Equal(t, uintptr(16), pc.Attributes[1].Offset)
}
