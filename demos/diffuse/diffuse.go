// Package diffuse draws a textured sphere lit by ambient light and a
// rotatable directional light, with a proxy arrow showing the light.
package diffuse

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/glsamples/camera"
	"github.com/plus3/glsamples/content"
	"github.com/plus3/glsamples/demos/proxy"
	"github.com/plus3/glsamples/demos/scene"
	"github.com/plus3/glsamples/game"
	"github.com/plus3/glsamples/gametime"
	"github.com/plus3/glsamples/gfx"
	"github.com/plus3/glsamples/hotreload"
	"github.com/plus3/glsamples/input"
	"github.com/plus3/glsamples/lighting"
	"github.com/plus3/glsamples/mesh"
)

var proxyPosition = mgl32.Vec3{10, 0, 0}

const proxyScale = 0.5

type Demo struct {
	game.DrawableBase
	Game     game.Service[*game.Game]
	Camera   game.Service[*camera.Camera]
	Keyboard game.Service[input.Keyboard]
	Watcher  game.Service[*hotreload.Watcher]

	options  scene.Options
	program  *gfx.Program
	vertices *gfx.VertexArray
	texture  *gfx.Texture
	world    mgl32.Mat4

	ambient          *lighting.Light
	ambientIntensity lighting.IntensityControl
	light            *lighting.DirectionalLight
	lightIntensity   lighting.IntensityControl
	rotation         lighting.RotationControl
	proxy            *proxy.Model
}

func New(options scene.Options) *Demo {
	d := &Demo{
		options: options,
		world:   mgl32.Ident4(),
		ambient: lighting.NewLight(),
		ambientIntensity: lighting.IntensityControl{
			Intensity: lighting.NewIntensity(0),
			RaiseKey:  input.KeyPageUp,
			LowerKey:  input.KeyPageDown,
		},
		light: lighting.NewDirectionalLight(),
		lightIntensity: lighting.IntensityControl{
			Intensity: lighting.NewIntensity(1),
			RaiseKey:  input.KeyHome,
			LowerKey:  input.KeyEnd,
		},
		rotation: lighting.RotationControl{Rate: lighting.DefaultRotationRate},
		proxy:    proxy.New(options.Content, content.DirectionalLightProxyModel, proxyScale),
	}
	d.ambient.SetColor(d.ambientIntensity.Color())
	d.light.SetColor(d.lightIntensity.Color())

	d.proxy.SetPosition(proxyPosition)
	d.proxy.ApplyRotation(mgl32.HomogRotate3D(mgl32.DegToRad(90), lighting.Up))
	return d
}

func (d *Demo) AmbientLight() *lighting.Light                { return d.ambient }
func (d *Demo) DirectionalLight() *lighting.DirectionalLight { return d.light }

func (d *Demo) Initialize() error {
	d.proxy.Bind(d.Game.Get().Services())
	if err := d.proxy.Initialize(); err != nil {
		return err
	}

	var err error
	d.program, err = d.options.BuildProgram(d.Watcher.Get(),
		content.DiffuseLightingVertex, content.DiffuseLightingFragment,
		"WorldViewProjection", "World", "AmbientColor", "LightColor", "LightDirection")
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
	vertices, err := m.PositionTextureNormalVertices()
	if err != nil {
		return err
	}
	d.vertices = gfx.NewVertexArray(vertices, mesh.PositionTextureNormalLayout(), m.Indices)
	return nil
}

func (d *Demo) Update(gt gametime.GameTime) {
	keyboard := d.Keyboard.Get()
	elapsed := gt.Elapsed()

	if d.ambientIntensity.Apply(keyboard, elapsed) {
		d.ambient.SetColor(d.ambientIntensity.Color())
	}
	if d.lightIntensity.Apply(keyboard, elapsed) {
		d.light.SetColor(d.lightIntensity.Color())
	}
	if rotation, ok := d.rotation.Rotation(keyboard, elapsed, d.light.Right()); ok {
		d.light.ApplyRotation(rotation)
		d.proxy.ApplyRotation(rotation)
	}

	d.proxy.Update(gt)
}

func (d *Demo) Draw(gt gametime.GameTime) {
	d.program.Use()
	d.program.SetMat4("WorldViewProjection", d.Camera.Get().ViewProjection().Mul4(d.world))
	d.program.SetMat4("World", d.world)
	d.program.SetVec4("AmbientColor", d.ambient.Color())
	d.program.SetVec4("LightColor", d.light.Color())
	d.program.SetVec3("LightDirection", d.light.Direction())
	d.program.SetInt("ColorTextureSampler", 0)
	d.texture.Bind(0)

	gl.Enable(gl.CULL_FACE)
	gl.FrontFace(gl.CCW)

	d.vertices.Draw()

	d.proxy.Draw(gt)
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
	return d.proxy.Close()
}
