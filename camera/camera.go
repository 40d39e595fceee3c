// Package camera provides the perspective camera demos render through.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/glsamples/game"
	"github.com/plus3/glsamples/gametime"
	"github.com/plus3/glsamples/lighting"
)

const (
	DefaultFieldOfView       float32 = 45
	DefaultNearPlaneDistance float32 = 0.01
	DefaultFarPlaneDistance  float32 = 1000
)

// Settings are the projection parameters of a camera.
type Settings struct {
	FieldOfView float32 // vertical, in degrees
	AspectRatio float32
	Near        float32
	Far         float32
}

// DefaultSettings returns a 45 degree camera with a 4:3 aspect ratio.
func DefaultSettings() Settings {
	return Settings{
		FieldOfView: DefaultFieldOfView,
		AspectRatio: 4.0 / 3.0,
		Near:        DefaultNearPlaneDistance,
		Far:         DefaultFarPlaneDistance,
	}
}

// Camera is a perspective camera. Matrices are rebuilt on Update.
type Camera struct {
	game.Base

	settings  Settings
	position  mgl32.Vec3
	direction mgl32.Vec3
	up        mgl32.Vec3
	right     mgl32.Vec3

	view       mgl32.Mat4
	projection mgl32.Mat4
}

// New creates a camera at the origin looking forward.
func New(settings Settings) *Camera {
	c := &Camera{settings: settings}
	c.Reset()
	c.UpdateProjectionMatrix()
	return c
}

func (c *Camera) Position() mgl32.Vec3  { return c.position }
func (c *Camera) Direction() mgl32.Vec3 { return c.direction }
func (c *Camera) Up() mgl32.Vec3        { return c.up }
func (c *Camera) Right() mgl32.Vec3     { return c.right }
func (c *Camera) Settings() Settings    { return c.settings }

// SetPosition moves the camera.
func (c *Camera) SetPosition(position mgl32.Vec3) {
	c.position = position
}

// SetAspectRatio updates the aspect ratio and the projection matrix,
// typically after a framebuffer resize.
func (c *Camera) SetAspectRatio(aspect float32) {
	if aspect <= 0 {
		return
	}
	c.settings.AspectRatio = aspect
	c.UpdateProjectionMatrix()
}

// Reset returns the camera to the origin looking forward.
func (c *Camera) Reset() {
	c.position = mgl32.Vec3{}
	c.direction = lighting.Forward
	c.up = lighting.Up
	c.right = lighting.Right
	c.UpdateViewMatrix()
}

// ApplyRotation rotates the camera's orientation by transform.
func (c *Camera) ApplyRotation(transform mgl32.Mat4) {
	c.direction, c.up, c.right = lighting.RotateBasis(transform, c.direction, c.up)
}

// Update rebuilds the view matrix from the current position and orientation.
func (c *Camera) Update(gametime.GameTime) {
	c.UpdateViewMatrix()
}

// UpdateViewMatrix rebuilds the view matrix.
func (c *Camera) UpdateViewMatrix() {
	target := c.position.Add(c.direction)
	c.view = mgl32.LookAtV(c.position, target, c.up)
}

// UpdateProjectionMatrix rebuilds the projection matrix from the settings.
func (c *Camera) UpdateProjectionMatrix() {
	s := c.settings
	c.projection = mgl32.Perspective(mgl32.DegToRad(s.FieldOfView), s.AspectRatio, s.Near, s.Far)
}

// View returns the view matrix.
func (c *Camera) View() mgl32.Mat4 { return c.view }

// Projection returns the projection matrix.
func (c *Camera) Projection() mgl32.Mat4 { return c.projection }

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.projection.Mul4(c.view)
}
