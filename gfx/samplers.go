package gfx

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kamstrup/intmap"
	"github.com/plus3/glsamples/sampler"
)

// Samplers holds one GL sampler object per wrap mode.
type Samplers struct {
	ids *intmap.Map[sampler.WrapMode, uint32]
}

// NewSamplers creates a sampler for every wrap mode. ClampToBorder uses
// border as its border color. A bound sampler overrides the texture's own
// filtering, so mipmaps must match how the sampled textures were built.
func NewSamplers(border mgl32.Vec4, mipmaps bool) *Samplers {
	modes := sampler.Modes()
	s := &Samplers{ids: intmap.New[sampler.WrapMode, uint32](len(modes))}

	for _, mode := range modes {
		var id uint32
		gl.GenSamplers(1, &id)

		wrap := glWrapMode(mode)
		gl.SamplerParameteri(id, gl.TEXTURE_WRAP_S, wrap)
		gl.SamplerParameteri(id, gl.TEXTURE_WRAP_T, wrap)
		gl.SamplerParameteri(id, gl.TEXTURE_MIN_FILTER, minFilter(mipmaps))
		gl.SamplerParameteri(id, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		if mode == sampler.ClampToBorder {
			gl.SamplerParameterfv(id, gl.TEXTURE_BORDER_COLOR, &border[0])
		}

		s.ids.Put(mode, id)
	}
	return s
}

func glWrapMode(mode sampler.WrapMode) int32 {
	switch mode {
	case sampler.MirroredRepeat:
		return gl.MIRRORED_REPEAT
	case sampler.ClampToEdge:
		return gl.CLAMP_TO_EDGE
	case sampler.ClampToBorder:
		return gl.CLAMP_TO_BORDER
	default:
		return gl.REPEAT
	}
}

// ID returns the sampler object for mode.
func (s *Samplers) ID(mode sampler.WrapMode) (uint32, bool) {
	return s.ids.Get(mode)
}

// Bind attaches the sampler for mode to a texture unit. Unknown modes
// unbind the unit's sampler.
func (s *Samplers) Bind(unit uint32, mode sampler.WrapMode) {
	id, _ := s.ids.Get(mode)
	gl.BindSampler(unit, id)
}

func (s *Samplers) Delete() {
	for _, mode := range sampler.Modes() {
		if id, ok := s.ids.Get(mode); ok {
			gl.DeleteSamplers(1, &id)
		}
	}
	s.ids.Clear()
}
