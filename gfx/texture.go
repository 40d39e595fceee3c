package gfx

import (
	"errors"
	"fmt"
	"image"
	"io/fs"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/plus3/glsamples/imaging"
)

var ErrTextureLoad = errors.New("gfx: texture load failed")

// TextureOptions control decoding and upload.
type TextureOptions struct {
	imaging.Options
	Mipmaps bool
	// Compress lets the driver store the texture in a compressed format.
	Compress bool
}

// Texture is a 2D RGBA texture.
type Texture struct {
	ID            uint32
	Width, Height int32
}

// LoadTexture decodes an image from fsys and uploads it. Every failure
// wraps ErrTextureLoad.
func LoadTexture(fsys fs.FS, name string, opts TextureOptions) (*Texture, error) {
	img, err := imaging.Load(fsys, name, opts.Options)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTextureLoad, err)
	}
	return NewTexture(img, opts)
}

// NewTexture uploads an RGBA image. The image origin must be (0, 0).
func NewTexture(img *image.RGBA, opts TextureOptions) (*Texture, error) {
	bounds := img.Bounds()
	if bounds.Min != (image.Point{}) || bounds.Empty() {
		return nil, fmt.Errorf("%w: unsupported bounds %v", ErrTextureLoad, bounds)
	}

	t := &Texture{Width: int32(bounds.Dx()), Height: int32(bounds.Dy())}

	internalFormat := int32(gl.RGBA8)
	if opts.Compress {
		internalFormat = gl.COMPRESSED_RGBA
	}

	drainErrors(gl.GetError)

	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, t.Width, t.Height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	if opts.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter(opts.Mipmaps))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &t.ID)
		return nil, fmt.Errorf("%w: gl error 0x%x", ErrTextureLoad, code)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

// Bind makes the texture current on a texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.ID)
	t.ID = 0
}
