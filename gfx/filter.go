package gfx

import "github.com/go-gl/gl/v4.1-core/gl"

// maxQueuedErrors bounds drainErrors when a broken context keeps
// reporting errors.
const maxQueuedErrors = 32

// minFilter picks trilinear filtering only for textures that have a
// mipmap chain; sampling a missing chain yields black.
func minFilter(mipmaps bool) int32 {
	if mipmaps {
		return gl.LINEAR_MIPMAP_LINEAR
	}
	return gl.LINEAR
}

// drainErrors empties the GL error queue so a later check only sees errors
// from the calls that follow. It returns how many were discarded.
func drainErrors(getError func() uint32) int {
	n := 0
	for n < maxQueuedErrors && getError() != gl.NO_ERROR {
		n++
	}
	return n
}
