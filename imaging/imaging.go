// Package imaging decodes texture images and prepares their pixels for
// upload: RGBA conversion, vertical flip and NTSC-safe color scaling.
package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// NTSC broadcast-safe channel range.
const (
	NTSCMin uint8 = 16
	NTSCMax uint8 = 235
)

// ntscScale maps the full channel range linearly onto [NTSCMin, NTSCMax],
// rounding the ends outward by just under half a step.
var ntscScale = func() (lut [256]uint8) {
	const (
		lo = float32(NTSCMin) - 0.499
		hi = float32(NTSCMax) + 0.499
	)
	for i := range lut {
		lut[i] = uint8((hi-lo)*float32(i)/255 + lo)
	}
	return lut
}()

// ErrEmptyImage is returned for images with no pixels.
var ErrEmptyImage = errors.New("imaging: image has no pixels")

// Options control how a decoded image is prepared.
type Options struct {
	// FlipVertical stores the bottom row first.
	FlipVertical bool
	// NTSCSafe scales color channels into [16, 235].
	NTSCSafe bool
}

// Decode reads any registered image format (jpeg, png, gif, bmp, tiff,
// webp) and converts it to RGBA.
func Decode(r io.Reader, opts Options) (*image.RGBA, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if src.Bounds().Empty() {
		return nil, fmt.Errorf("%w (%s)", ErrEmptyImage, format)
	}
	return Prepare(src, opts), nil
}

// Load opens and decodes an image from fsys.
func Load(fsys fs.FS, name string, opts Options) (*image.RGBA, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, err := Decode(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return img, nil
}

// Prepare converts src to an RGBA image with its origin at (0, 0) and
// applies opts.
func Prepare(src image.Image, opts Options) *image.RGBA {
	img := clone.AsRGBA(src)
	img.Rect = img.Rect.Sub(img.Rect.Min)
	if opts.FlipVertical {
		img = transform.FlipV(img)
	}
	if opts.NTSCSafe {
		ScaleNTSC(img)
	}
	return img
}

// ScaleNTSC remaps the red, green and blue channels of img in place so
// that 0 and 255 land on the NTSC-safe range. Alpha is left untouched.
func ScaleNTSC(img *image.RGBA) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := img.Pix[img.PixOffset(bounds.Min.X, y):img.PixOffset(bounds.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			row[i] = ntscScale[row[i]]
			row[i+1] = ntscScale[row[i+1]]
			row[i+2] = ntscScale[row[i+2]]
		}
	}
}

// Checkerboard generates a size x size image of alternating cell x cell
// squares, used when a demo has no texture file configured.
func Checkerboard(size, cell int, a, b color.RGBA) *image.RGBA {
	size = max(size, 1)
	cell = max(cell, 1)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
