// Package wrapping draws a textured quad whose texture coordinates run
// past [0, 1] and cycles through the sampler wrap modes with the space bar.
package wrapping

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
	"github.com/plus3/glsamples/sampler"
	"github.com/rs/zerolog"
)

// Quad vertices and indices. Texture coordinates span [0, 3] so the wrap
// mode decides what fills the area outside the first repetition.
var (
	quadVertices = []mesh.VertexPositionTexture{
		{Position: mgl32.Vec4{-5, 1, 0, 1}, TextureCoordinates: mgl32.Vec2{0, 3}},
		{Position: mgl32.Vec4{-5, 11, 0, 1}, TextureCoordinates: mgl32.Vec2{0, 0}},
		{Position: mgl32.Vec4{5, 11, 0, 1}, TextureCoordinates: mgl32.Vec2{3, 0}},
		{Position: mgl32.Vec4{5, 1, 0, 1}, TextureCoordinates: mgl32.Vec2{3, 3}},
	}
	quadIndices = []uint32{0, 2, 1, 0, 3, 2}
)

type Demo struct {
	game.DrawableBase
	Camera   game.Service[*camera.Camera]
	Handlers game.Service[*input.Handlers]
	Logger   game.Service[zerolog.Logger]
	Watcher  game.Service[*hotreload.Watcher]

	options  scene.Options
	program  *gfx.Program
	quad     *gfx.VertexArray
	texture  *gfx.Texture
	samplers *gfx.Samplers
	mode     sampler.WrapMode
	handler  input.HandlerID
	world    mgl32.Mat4
}

func New(options scene.Options) *Demo {
	return &Demo{
		options: options,
		mode:    sampler.Repeat,
		world:   mgl32.Ident4(),
	}
}

// Mode returns the active wrap mode.
func (d *Demo) Mode() sampler.WrapMode { return d.mode }

func (d *Demo) Initialize() error {
	var err error
	d.program, err = d.options.BuildProgram(d.Watcher.Get(),
		content.WrappingModesVertex, content.WrappingModesFragment,
		"WorldViewProjection")
	if err != nil {
		return err
	}

	d.texture, err = d.options.ColorTexture()
	if err != nil {
		return err
	}

	d.quad = gfx.NewVertexArray(quadVertices, mesh.PositionTextureLayout(), quadIndices)
	d.samplers = gfx.NewSamplers(lighting.Purple, d.options.Mipmaps)

	d.handler = d.Handlers.Get().Add(input.OnPress(input.KeySpace, d.nextMode))
	return nil
}

func (d *Demo) nextMode() {
	d.mode = d.mode.Next()
	log := d.Logger.Get()
	log.Info().Stringer("mode", d.mode).Msg("wrap mode changed")
}

func (d *Demo) Draw(gametime.GameTime) {
	d.program.Use()
	d.program.SetMat4("WorldViewProjection", d.Camera.Get().ViewProjection().Mul4(d.world))
	d.program.SetInt("ColorTextureSampler", 0)

	d.texture.Bind(0)
	d.samplers.Bind(0, d.mode)

	gl.Enable(gl.CULL_FACE)
	gl.FrontFace(gl.CCW)

	d.quad.Draw()
	gl.BindSampler(0, 0)
}

func (d *Demo) Close() error {
	if d.handler != 0 {
		d.Handlers.Get().Remove(d.handler)
		d.handler = 0
	}
	if d.samplers != nil {
		d.samplers.Delete()
	}
	if d.quad != nil {
		d.quad.Delete()
	}
	if d.texture != nil {
		d.texture.Delete()
	}
	if d.program != nil {
		d.program.Delete()
	}
	return nil
}
