package lighting

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/glsamples/input"
)

// DefaultRotationRate is the light rotation speed in degrees per second
// around the horizontal and vertical axes.
var DefaultRotationRate = mgl32.Vec2{360, 360}

// RotationControl turns held arrow keys into a rotation: Left/Right spin
// around the world up axis and Up/Down tilt around a supplied right axis.
type RotationControl struct {
	Rate mgl32.Vec2
}

// Amount returns the rotation in degrees for this frame: X around up, Y
// around right.
func (c RotationControl) Amount(keyboard input.Keyboard, elapsed float32) mgl32.Vec2 {
	var amount mgl32.Vec2
	if keyboard.KeyDown(input.KeyLeft) {
		amount[0] += c.Rate.X() * elapsed
	}
	if keyboard.KeyDown(input.KeyRight) {
		amount[0] -= c.Rate.X() * elapsed
	}
	if keyboard.KeyDown(input.KeyUp) {
		amount[1] += c.Rate.Y() * elapsed
	}
	if keyboard.KeyDown(input.KeyDown) {
		amount[1] -= c.Rate.Y() * elapsed
	}
	return amount
}

// Rotation returns the frame's rotation matrix and false when no arrow key
// is held.
func (c RotationControl) Rotation(keyboard input.Keyboard, elapsed float32, right mgl32.Vec3) (mgl32.Mat4, bool) {
	amount := c.Amount(keyboard, elapsed)
	return RotationMatrix(amount, right)
}

// RotationMatrix composes a rotation of amount.X degrees around the world
// up axis with amount.Y degrees around right.
func RotationMatrix(amount mgl32.Vec2, right mgl32.Vec3) (mgl32.Mat4, bool) {
	rotation := mgl32.Ident4()
	if amount.X() != 0 {
		rotation = mgl32.HomogRotate3D(mgl32.DegToRad(amount.X()), Up)
	}
	if amount.Y() != 0 {
		rotation = rotation.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(amount.Y()), right))
	}
	return rotation, amount.X() != 0 || amount.Y() != 0
}
