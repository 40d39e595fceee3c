package lighting

import "github.com/go-gl/mathgl/mgl32"

// Named RGBA colors.
var (
	Black          = mgl32.Vec4{0, 0, 0, 1}
	White          = mgl32.Vec4{1, 1, 1, 1}
	Red            = mgl32.Vec4{1, 0, 0, 1}
	Green          = mgl32.Vec4{0, 1, 0, 1}
	Blue           = mgl32.Vec4{0, 0, 1, 1}
	Yellow         = mgl32.Vec4{1, 1, 0, 1}
	Purple         = mgl32.Vec4{0.5, 0, 0.5, 1}
	CornflowerBlue = mgl32.Vec4{0.392, 0.584, 0.929, 1}
)

// Gray returns an opaque color with every channel set to intensity.
func Gray(intensity float32) mgl32.Vec4 {
	return mgl32.Vec4{intensity, intensity, intensity, 1}
}
