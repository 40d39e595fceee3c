// Package ambient draws a textured sphere lit only by ambient light whose
// intensity ramps with Page Up and Page Down.
package ambient

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/glsamples/camera"
	"github.com/plus3/glsamples/content"
	"github.com/plus3/glsamples/demos/scene"
	"github.com/plus3/glsamples/game"
	"github.com/plus3/glsamples/gametime"
	"github.com/plus3/glsamples/gfx"
	"github.com/plus3/glsamples/hotreload"
	"github.com/plus3/glsamples/input"
	"github.com/plus3/glsamples/lighting"
	"github.com/plus3/glsamples/mesh"
)

type Demo struct {
	game.DrawableBase
	Camera   game.Service[*camera.Camera]
	Keyboard game.Service[input.Keyboard]
	Watcher  game.Service[*hotreload.Watcher]

	options  scene.Options
	program  *gfx.Program
	vertices *gfx.VertexArray
	texture  *gfx.Texture
	world    mgl32.Mat4

	ambient   *lighting.Light
	intensity lighting.IntensityControl
}

func New(options scene.Options) *Demo {
	d := &Demo{
		options: options,
		world:   mgl32.Ident4(),
		ambient: lighting.NewLight(),
		intensity: lighting.IntensityControl{
			Intensity: lighting.NewIntensity(1),
			RaiseKey:  input.KeyPageUp,
			LowerKey:  input.KeyPageDown,
		},
	}
	d.ambient.SetColor(d.intensity.Color())
	return d
}

// AmbientLight returns the light the sphere is shaded with.
func (d *Demo) AmbientLight() *lighting.Light { return d.ambient }

func (d *Demo) Initialize() error {
	var err error
	d.program, err = d.options.BuildProgram(d.Watcher.Get(),
		content.AmbientLightingVertex, content.AmbientLightingFragment,
		"WorldViewProjection", "AmbientColor")
	if err != nil {
		return err
	}

	d.texture, err = d.options.ColorTexture()
	if err != nil {
		return err
	}

	m, err := d.options.Mesh()
	if err != nil {
		return err
	}
	vertices, err := m.PositionTextureVertices()
	if err != nil {
		return err
	}
	d.vertices = gfx.NewVertexArray(vertices, mesh.PositionTextureLayout(), m.Indices)
	return nil
}

func (d *Demo) Update(gt gametime.GameTime) {
	if d.intensity.Apply(d.Keyboard.Get(), gt.Elapsed()) {
		d.ambient.SetColor(d.intensity.Color())
	}
}

func (d *Demo) Draw(gametime.GameTime) {
	d.program.Use()
	d.program.SetMat4("WorldViewProjection", d.Camera.Get().ViewProjection().Mul4(d.world))
	d.program.SetVec4("AmbientColor", d.ambient.Color())
	d.program.SetInt("ColorTextureSampler", 0)
	d.texture.Bind(0)

	gl.Enable(gl.CULL_FACE)
	gl.FrontFace(gl.CCW)

	d.vertices.Draw()
}

func (d *Demo) Close() error {
	if d.vertices != nil {
		d.vertices.Delete()
	}
	if d.texture != nil {
		d.texture.Delete()
	}
	if d.program != nil {
		d.program.Delete()
	}
	return nil
}
