// Package proxy draws a solid-colored stand-in model that shows where a
// light is and which way it points.
package proxy

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/glsamples/camera"
	"github.com/plus3/glsamples/content"
	"github.com/plus3/glsamples/game"
	"github.com/plus3/glsamples/gametime"
	"github.com/plus3/glsamples/gfx"
	"github.com/plus3/glsamples/hotreload"
	"github.com/plus3/glsamples/lighting"
	"github.com/plus3/glsamples/mesh"
)

// Model is a drawable proxy. It is usually owned by a demo, which forwards
// Update and Draw, rather than registered with the game directly.
type Model struct {
	game.DrawableBase
	Camera  game.Service[*camera.Camera]
	Watcher game.Service[*hotreload.Watcher]

	source content.Source
	path   string
	scale  float32
	color  mgl32.Vec4

	position  mgl32.Vec3
	direction mgl32.Vec3
	up        mgl32.Vec3
	right     mgl32.Vec3
	world     mgl32.Mat4
	dirty     bool

	program  *gfx.Program
	vertices *gfx.VertexArray
}

// New creates a proxy for the model at path in source.
func New(source content.Source, path string, scale float32) *Model {
	return &Model{
		source:    source,
		path:      path,
		scale:     scale,
		color:     lighting.White,
		direction: lighting.Forward,
		up:        lighting.Up,
		right:     lighting.Right,
		world:     mgl32.Ident4(),
		dirty:     true,
	}
}

// Bind attaches the proxy's services to those of its owner.
func (m *Model) Bind(services *game.Services) {
	m.Camera.Init(services)
	m.Watcher.Init(services)
}

func (m *Model) Position() mgl32.Vec3  { return m.position }
func (m *Model) Direction() mgl32.Vec3 { return m.direction }
func (m *Model) World() mgl32.Mat4     { return m.world }

func (m *Model) SetPosition(position mgl32.Vec3) {
	m.position = position
	m.dirty = true
}

func (m *Model) SetColor(color mgl32.Vec4) { m.color = color }

// ApplyRotation rotates the proxy's orientation by transform.
func (m *Model) ApplyRotation(transform mgl32.Mat4) {
	m.direction, m.up, m.right = lighting.RotateBasis(transform, m.direction, m.up)
	m.dirty = true
}

func (m *Model) Initialize() error {
	model, err := mesh.LoadModel(m.source.FS, m.path, false)
	if err != nil {
		return err
	}
	first, err := model.First()
	if err != nil {
		return err
	}

	m.program, err = gfx.BuildProgram(m.source.FS,
		gfx.VertexShader(content.BasicEffectVertex),
		gfx.FragmentShader(content.BasicEffectFragment))
	if err != nil {
		return err
	}
	if err := m.program.Uniforms("WorldViewProjection"); err != nil {
		return err
	}
	if watcher := m.Watcher.Get(); watcher != nil {
		if err := watcher.Watch(m.program); err != nil {
			return err
		}
	}

	m.vertices = gfx.NewVertexArray(first.PositionColorVertices(m.color), mesh.PositionColorLayout(), first.Indices)
	return nil
}

func (m *Model) Update(gametime.GameTime) {
	if m.dirty {
		m.world = lighting.WorldMatrix(m.position, m.direction, m.up, m.right, m.scale)
		m.dirty = false
	}
}

func (m *Model) Draw(gametime.GameTime) {
	m.program.Use()
	m.program.SetMat4("WorldViewProjection", m.Camera.Get().ViewProjection().Mul4(m.world))

	gl.Enable(gl.CULL_FACE)
	gl.FrontFace(gl.CCW)

	m.vertices.Draw()
}

func (m *Model) Close() error {
	if m.vertices != nil {
		m.vertices.Delete()
	}
	if m.program != nil {
		m.program.Delete()
	}
	return nil
}
