// Package scene holds what the lighting and texturing demos share: their
// options, texture and model loading, and the services they draw from.
package scene

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/plus3/glsamples/content"
	"github.com/plus3/glsamples/gfx"
	"github.com/plus3/glsamples/hotreload"
	"github.com/plus3/glsamples/imaging"
	"github.com/plus3/glsamples/mesh"
)

// Options configure a demo's assets.
type Options struct {
	Content content.Source
	// Texture is a file path of the color texture. Empty selects a
	// generated checkerboard.
	Texture string
	// Model is a file path of an OBJ model drawn instead of the generated
	// sphere. Only the first mesh is used.
	Model string

	Mipmaps  bool
	Compress bool
	NTSCSafe bool
	FlipY    bool

	SphereRadius float32
	SphereSlices int
	SphereStacks int
}

func (o Options) textureOptions() gfx.TextureOptions {
	return gfx.TextureOptions{
		Options:  imaging.Options{FlipVertical: o.FlipY, NTSCSafe: o.NTSCSafe},
		Mipmaps:  o.Mipmaps,
		Compress: o.Compress,
	}
}

// ColorTexture loads the configured texture or generates a checkerboard.
func (o Options) ColorTexture() (*gfx.Texture, error) {
	opts := o.textureOptions()
	if o.Texture == "" {
		img := imaging.Checkerboard(256, 32,
			color.RGBA{R: 240, G: 240, B: 240, A: 255},
			color.RGBA{R: 40, G: 90, B: 160, A: 255})
		if o.NTSCSafe {
			imaging.ScaleNTSC(img)
		}
		return gfx.NewTexture(img, opts)
	}

	dir, name := filepath.Split(o.Texture)
	if dir == "" {
		dir = "."
	}
	return gfx.LoadTexture(os.DirFS(dir), name, opts)
}

// Mesh loads the configured model, or generates a sphere.
func (o Options) Mesh() (*mesh.Mesh, error) {
	if o.Model == "" {
		return mesh.Sphere(o.SphereRadius, o.SphereSlices, o.SphereStacks), nil
	}

	dir, name := filepath.Split(o.Model)
	if dir == "" {
		dir = "."
	}
	model, err := mesh.LoadModel(os.DirFS(dir), name, true)
	if err != nil {
		return nil, err
	}
	return model.First()
}

// BuildProgram compiles a vertex and fragment shader pair from the content
// source, checks that every uniform is active, and registers the program
// for hot reload when a watcher is provided.
func (o Options) BuildProgram(watcher *hotreload.Watcher, vertex, fragment string, uniforms ...string) (*gfx.Program, error) {
	program, err := gfx.BuildProgram(o.Content.FS, gfx.VertexShader(vertex), gfx.FragmentShader(fragment))
	if err != nil {
		return nil, fmt.Errorf("build program: %w", err)
	}
	if err := program.Uniforms(uniforms...); err != nil {
		program.Delete()
		return nil, err
	}
	if watcher != nil {
		if err := watcher.Watch(program); err != nil {
			program.Delete()
			return nil, err
		}
	}
	return program, nil
}
