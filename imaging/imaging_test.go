package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func gradient() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{R: 10, G: 128, B: 250, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		img, err := Decode(bytes.NewReader(encodePNG(t, gradient())), Options{})
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
		assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(1, 0))
	})

	t.Run("bmp", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, bmp.Encode(&buf, gradient()))

		img, err := Decode(&buf, Options{})
		require.NoError(t, err)
		assert.Equal(t, color.RGBA{R: 200, G: 100, B: 50, A: 255}, img.RGBAAt(1, 1))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := Decode(bytes.NewReader([]byte("not an image")), Options{})
		assert.Error(t, err)
	})
}

func TestPrepare(t *testing.T) {
	t.Run("flip vertical", func(t *testing.T) {
		img := Prepare(gradient(), Options{FlipVertical: true})
		assert.Equal(t, color.RGBA{R: 10, G: 128, B: 250, A: 255}, img.RGBAAt(0, 0))
		assert.Equal(t, color.RGBA{R: 0, G: 0, B: 0, A: 255}, img.RGBAAt(0, 1))
	})

	t.Run("ntsc safe", func(t *testing.T) {
		img := Prepare(gradient(), Options{NTSCSafe: true})
		assert.Equal(t, color.RGBA{R: 15, G: 15, B: 15, A: 255}, img.RGBAAt(0, 0))
		assert.Equal(t, color.RGBA{R: 235, G: 235, B: 235, A: 255}, img.RGBAAt(1, 0))
		assert.Equal(t, color.RGBA{R: 24, G: 125, B: 231, A: 255}, img.RGBAAt(0, 1))
		assert.Equal(t, color.RGBA{R: 188, G: 101, B: 58, A: 255}, img.RGBAAt(1, 1))
	})

	t.Run("ntsc scaling keeps order and alpha", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 256, 1))
		for x := range 256 {
			img.SetRGBA(x, 0, color.RGBA{R: uint8(x), G: uint8(x), B: uint8(x), A: uint8(x)})
		}
		ScaleNTSC(img)

		prev := uint8(0)
		for x := range 256 {
			c := img.RGBAAt(x, 0)
			assert.GreaterOrEqual(t, c.R, prev)
			assert.Equal(t, uint8(x), c.A)
			prev = c.R
		}
		assert.Equal(t, uint8(15), img.RGBAAt(0, 0).R)
		assert.Equal(t, NTSCMax, img.RGBAAt(255, 0).R)
	})

	t.Run("sub image origin is normalized", func(t *testing.T) {
		sub := gradient().SubImage(image.Rect(1, 1, 2, 2))
		img := Prepare(sub, Options{})
		assert.Equal(t, image.Rect(0, 0, 1, 1), img.Bounds())
		assert.Equal(t, color.RGBA{R: 200, G: 100, B: 50, A: 255}, img.RGBAAt(0, 0))

		column := Prepare(gradient(), Options{}).SubImage(image.Rect(1, 0, 2, 2))
		flipped := Prepare(column, Options{FlipVertical: true})
		assert.Equal(t, image.Rect(0, 0, 1, 2), flipped.Bounds())
		assert.Equal(t, color.RGBA{R: 200, G: 100, B: 50, A: 255}, flipped.RGBAAt(0, 0))
		assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, flipped.RGBAAt(0, 1))
	})
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"textures/gradient.png": {Data: encodePNG(t, gradient())}}

	img, err := Load(fsys, "textures/gradient.png", Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())

	_, err = Load(fsys, "textures/missing.png", Options{})
	assert.Error(t, err)
}

func TestCheckerboard(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}

	img := Checkerboard(8, 2, white, black)
	assert.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())
	assert.Equal(t, white, img.RGBAAt(0, 0))
	assert.Equal(t, white, img.RGBAAt(1, 1))
	assert.Equal(t, black, img.RGBAAt(2, 0))
	assert.Equal(t, black, img.RGBAAt(0, 2))
	assert.Equal(t, white, img.RGBAAt(2, 2))

	tiny := Checkerboard(0, 0, white, black)
	assert.Equal(t, 1, tiny.Bounds().Dx())
}
