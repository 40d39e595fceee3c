package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/glsamples/game"
	"github.com/plus3/glsamples/gametime"
	"github.com/plus3/glsamples/input"
	"github.com/stretchr/testify/assert"
)

type heldKeys map[input.Key]bool

func (h heldKeys) KeyDown(key input.Key) bool { return h[key] }

type fakeMouse struct {
	x, y float64
	left bool
}

func (m *fakeMouse) CursorPosition() (float64, float64) { return m.x, m.y }
func (m *fakeMouse) ButtonDown(b input.MouseButton) bool {
	return b == input.MouseButtonLeft && m.left
}

func assertVec3(t *testing.T, expected, actual mgl32.Vec3) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], 1e-5, "component %d: expected %v, got %v", i, expected, actual)
	}
}

func TestCameraMatrices(t *testing.T) {
	c := New(DefaultSettings())
	c.SetPosition(mgl32.Vec3{0, 0, 10})
	c.Update(gametime.GameTime{})

	// The origin sits ten units in front of the camera.
	eye := c.View().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, -10, eye.Z(), 1e-4)

	clip := c.ViewProjection().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	ndc := clip.Vec3().Mul(1 / clip.W())
	assert.InDelta(t, 0, ndc.X(), 1e-5)
	assert.InDelta(t, 0, ndc.Y(), 1e-5)
	assert.True(t, ndc.Z() > -1 && ndc.Z() < 1)
}

func TestCameraAspectRatio(t *testing.T) {
	c := New(DefaultSettings())
	before := c.Projection()

	c.SetAspectRatio(16.0 / 9.0)
	assert.NotEqual(t, before, c.Projection())
	assert.InDelta(t, 16.0/9.0, c.Settings().AspectRatio, 1e-6)

	c.SetAspectRatio(0)
	assert.InDelta(t, 16.0/9.0, c.Settings().AspectRatio, 1e-6)
}

func TestCameraReset(t *testing.T) {
	c := New(DefaultSettings())
	c.SetPosition(mgl32.Vec3{1, 2, 3})
	c.ApplyRotation(mgl32.HomogRotate3D(mgl32.DegToRad(45), mgl32.Vec3{0, 1, 0}))

	c.Reset()
	assert.Equal(t, mgl32.Vec3{}, c.Position())
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, c.Direction())
}

func TestFirstPersonMovement(t *testing.T) {
	g := game.New(nil)
	keys := heldKeys{}
	game.Provide[input.Keyboard](g.Services(), keys)

	fp := NewFirstPerson(DefaultSettings())
	g.Register(fp)

	keys[input.KeyW] = true
	fp.Update(gametime.New(0.5, 0.5))
	assertVec3(t, mgl32.Vec3{0, 0, -5}, fp.Position())

	keys[input.KeyW] = false
	keys[input.KeyD] = true
	fp.Update(gametime.New(0.6, 0.1))
	assertVec3(t, mgl32.Vec3{1, 0, -5}, fp.Position())
}

func TestFirstPersonMouseRotation(t *testing.T) {
	g := game.New(nil)
	mouse := &fakeMouse{x: 100, y: 100}
	game.Provide[input.Mouse](g.Services(), mouse)

	fp := NewFirstPerson(DefaultSettings())
	fp.MouseSensitivity = 1
	g.Register(fp)

	// Moving without the button held does nothing.
	mouse.x = 150
	fp.Update(gametime.New(1, 1))
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, fp.Direction())

	// The first held frame only records the anchor.
	mouse.left = true
	fp.Update(gametime.New(2, 1))
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, fp.Direction())

	// Dragging 90 pixels right turns the camera 90 degrees right.
	mouse.x = 240
	fp.Update(gametime.New(3, 1))
	assertVec3(t, mgl32.Vec3{1, 0, 0}, fp.Direction())
}
