package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/glsamples/game"
	"github.com/plus3/glsamples/gametime"
	"github.com/plus3/glsamples/input"
	"github.com/plus3/glsamples/lighting"
)

const (
	DefaultMovementRate     float32 = 10  // units per second
	DefaultMouseSensitivity float32 = 100 // scales cursor pixels
	DefaultRotationRate     float32 = 1   // degrees per scaled pixel
)

// FirstPerson is a camera flown with WASD and rotated by dragging with the
// left mouse button held.
type FirstPerson struct {
	*Camera

	Keyboard game.Service[input.Keyboard]
	Mouse    game.Service[input.Mouse]

	MovementRate     float32
	MouseSensitivity float32
	RotationRate     float32

	lastX, lastY float64
	dragging     bool
}

// NewFirstPerson wraps a new camera with default rates.
func NewFirstPerson(settings Settings) *FirstPerson {
	return &FirstPerson{
		Camera:           New(settings),
		MovementRate:     DefaultMovementRate,
		MouseSensitivity: DefaultMouseSensitivity,
		RotationRate:     DefaultRotationRate,
	}
}

// Update applies keyboard movement and mouse rotation for this frame, then
// rebuilds the view matrix.
func (f *FirstPerson) Update(gt gametime.GameTime) {
	elapsed := gt.Elapsed()

	if keyboard := f.Keyboard.Get(); keyboard != nil {
		f.move(keyboard, elapsed)
	}
	if mouse := f.Mouse.Get(); mouse != nil {
		f.rotate(mouse, elapsed)
	}

	f.Camera.Update(gt)
}

func (f *FirstPerson) move(keyboard input.Keyboard, elapsed float32) {
	var movement mgl32.Vec2
	if keyboard.KeyDown(input.KeyW) {
		movement[1] += 1
	}
	if keyboard.KeyDown(input.KeyS) {
		movement[1] -= 1
	}
	if keyboard.KeyDown(input.KeyA) {
		movement[0] -= 1
	}
	if keyboard.KeyDown(input.KeyD) {
		movement[0] += 1
	}
	if movement.X() == 0 && movement.Y() == 0 {
		return
	}

	step := f.MovementRate * elapsed
	offset := f.right.Mul(movement.X() * step).Add(f.direction.Mul(movement.Y() * step))
	f.position = f.position.Add(offset)
}

func (f *FirstPerson) rotate(mouse input.Mouse, elapsed float32) {
	x, y := mouse.CursorPosition()
	if !mouse.ButtonDown(input.MouseButtonLeft) {
		f.dragging = false
		return
	}
	if !f.dragging {
		f.lastX, f.lastY = x, y
		f.dragging = true
		return
	}

	dx := float32(x - f.lastX)
	dy := float32(y - f.lastY)
	f.lastX, f.lastY = x, y
	if dx == 0 && dy == 0 {
		return
	}

	scale := f.MouseSensitivity * f.RotationRate * elapsed
	yaw := mgl32.HomogRotate3D(mgl32.DegToRad(-dx*scale), lighting.Up)
	pitch := mgl32.HomogRotate3D(mgl32.DegToRad(-dy*scale), f.right)
	f.ApplyRotation(yaw.Mul4(pitch))
}
