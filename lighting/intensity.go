package lighting

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/glsamples/input"
)

// Intensity is a light intensity in [0, 1].
type Intensity struct {
	value float32
}

// NewIntensity returns an intensity clamped to [0, 1].
func NewIntensity(value float32) Intensity {
	return Intensity{value: mgl32.Clamp(value, 0, 1)}
}

// Value returns the current intensity.
func (i Intensity) Value() float32 { return i.value }

// Color returns the intensity as an opaque gray.
func (i Intensity) Color() mgl32.Vec4 { return Gray(i.value) }

// Raise increases the intensity by amount, saturating at 1. It reports
// false without changing anything when the intensity is already full.
func (i *Intensity) Raise(amount float32) bool {
	if i.value >= 1 {
		return false
	}
	i.value = min(i.value+amount, 1)
	return true
}

// Lower decreases the intensity by amount, saturating at 0. It reports
// false without changing anything when the intensity is already zero.
func (i *Intensity) Lower(amount float32) bool {
	if i.value <= 0 {
		return false
	}
	i.value = max(i.value-amount, 0)
	return true
}

// IntensityControl ramps an intensity up while one key is held and down
// while another is held, at one unit per second.
type IntensityControl struct {
	Intensity
	RaiseKey input.Key
	LowerKey input.Key
}

// Apply ramps the intensity by elapsed seconds according to the held keys.
// It reports whether the intensity changed.
func (c *IntensityControl) Apply(keyboard input.Keyboard, elapsed float32) bool {
	changed := false
	if keyboard.KeyDown(c.RaiseKey) && c.Raise(elapsed) {
		changed = true
	}
	if keyboard.KeyDown(c.LowerKey) && c.Lower(elapsed) {
		changed = true
	}
	return changed
}
