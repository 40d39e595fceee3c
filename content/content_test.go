package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plus3/glsamples/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedAssets(t *testing.T) {
	src := Embedded()
	assert.False(t, src.OnDisk())
	assert.Empty(t, src.Path(BasicEffectVertex))

	shaders := map[string][]string{
		WrappingModesVertex:     {"WorldViewProjection"},
		WrappingModesFragment:   {"ColorTextureSampler"},
		AmbientLightingVertex:   {"WorldViewProjection"},
		AmbientLightingFragment: {"AmbientColor"},
		DiffuseLightingVertex:   {"WorldViewProjection", "World"},
		DiffuseLightingFragment: {"AmbientColor", "LightColor", "LightDirection"},
		BasicEffectVertex:       {"WorldViewProjection"},
		BasicEffectFragment:     {"vertexColor"},
	}
	for name, uniforms := range shaders {
		data, err := src.ReadFile(name)
		require.NoError(t, err, name)
		text := string(data)
		assert.True(t, strings.HasPrefix(text, "#version 410 core"), name)
		for _, u := range uniforms {
			assert.Contains(t, text, u, name)
		}
	}
}

func TestProxyModel(t *testing.T) {
	model, err := mesh.LoadModel(Embedded().FS, DirectionalLightProxyModel, false)
	require.NoError(t, err)
	m, err := model.First()
	require.NoError(t, err)

	assert.Equal(t, "DirectionalLightProxy", m.Name)
	assert.Len(t, m.Vertices, 13)
	assert.Len(t, m.Indices, 6*6+4*3)

	// The arrow points along +X.
	var tip float32
	for _, v := range m.Vertices {
		tip = max(tip, v.X())
	}
	assert.Equal(t, float32(2), tip)
}

func TestOpenDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "effects"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, BasicEffectVertex), []byte("override"), 0o644))

	src := Open(dir)
	assert.True(t, src.OnDisk())
	assert.Equal(t, filepath.Join(dir, BasicEffectVertex), src.Path(BasicEffectVertex))

	data, err := src.ReadFile(BasicEffectVertex)
	require.NoError(t, err)
	assert.Equal(t, "override", string(data))

	assert.False(t, Open("").OnDisk())
}
