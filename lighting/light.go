// Package lighting holds the light sources the lighting demos feed to
// their shaders, plus the intensity ramps driven by keyboard input.
package lighting

import "github.com/go-gl/mathgl/mgl32"

// Basis vectors shared by lights, cameras and proxy models.
var (
	Forward = mgl32.Vec3{0, 0, -1}
	Up      = mgl32.Vec3{0, 1, 0}
	Right   = mgl32.Vec3{1, 0, 0}
)

// Light is a colored light with no position, used for ambient light.
type Light struct {
	color mgl32.Vec4
}

// NewLight creates a white light.
func NewLight() *Light {
	return &Light{color: White}
}

// Color returns the light color.
func (l *Light) Color() mgl32.Vec4 { return l.color }

// SetColor replaces the light color.
func (l *Light) SetColor(color mgl32.Vec4) { l.color = color }

// DirectionalLight is a light arriving from a single direction. It keeps
// an orthonormal basis so it can be rotated incrementally.
type DirectionalLight struct {
	Light
	direction mgl32.Vec3
	up        mgl32.Vec3
	right     mgl32.Vec3
}

// NewDirectionalLight creates a white light pointing forward.
func NewDirectionalLight() *DirectionalLight {
	return &DirectionalLight{
		Light:     Light{color: White},
		direction: Forward,
		up:        Up,
		right:     Right,
	}
}

func (l *DirectionalLight) Direction() mgl32.Vec3 { return l.direction }
func (l *DirectionalLight) Up() mgl32.Vec3        { return l.up }
func (l *DirectionalLight) Right() mgl32.Vec3     { return l.right }

// ApplyRotation rotates the light's basis by transform.
func (l *DirectionalLight) ApplyRotation(transform mgl32.Mat4) {
	l.direction, l.up, l.right = RotateBasis(transform, l.direction, l.up)
}

// RotateBasis rotates direction and up by transform and rebuilds an
// orthonormal direction/up/right basis from them.
func RotateBasis(transform mgl32.Mat4, direction, up mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3, mgl32.Vec3) {
	direction = transform.Mul4x1(direction.Vec4(0)).Vec3().Normalize()
	up = transform.Mul4x1(up.Vec4(0)).Vec3().Normalize()

	right := direction.Cross(up).Normalize()
	up = right.Cross(direction)

	return direction, up, right
}

// WorldMatrix places a model with the given orientation: model +X maps to
// right, +Y to up and -Z to direction. The model is scaled uniformly, then
// rotated, then translated to position.
func WorldMatrix(position, direction, up, right mgl32.Vec3, scale float32) mgl32.Mat4 {
	rotation := mgl32.Mat4FromCols(
		right.Vec4(0),
		up.Vec4(0),
		direction.Mul(-1).Vec4(0),
		mgl32.Vec4{0, 0, 0, 1},
	)
	return mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(rotation).
		Mul4(mgl32.Scale3D(scale, scale, scale))
}
