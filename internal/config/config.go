// Package config loads the demo runner settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid")

type Window struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	Background [4]float32 `yaml:"background"` // RGBA clear color
}

type Camera struct {
	FieldOfView float32    `yaml:"fov"` // vertical, in degrees
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	Position    [3]float32 `yaml:"position"`
}

type Content struct {
	Dir   string `yaml:"dir"`   // empty uses the embedded assets
	Watch bool   `yaml:"watch"` // reload shaders when files under Dir change
}

type Texture struct {
	Path     string `yaml:"path"` // empty generates a checkerboard
	Mipmaps  bool   `yaml:"mipmaps"`
	Compress bool   `yaml:"compress"`
	NTSCSafe bool   `yaml:"ntsc_safe"`
	FlipY    bool   `yaml:"flip_y"`
}

type Sphere struct {
	Model  string  `yaml:"model"` // OBJ file drawn instead of the generated sphere
	Radius float32 `yaml:"radius"`
	Slices int     `yaml:"slices"`
	Stacks int     `yaml:"stacks"`
}

type Log struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type Config struct {
	Demo    string  `yaml:"demo"`
	Window  Window  `yaml:"window"`
	Camera  Camera  `yaml:"camera"`
	Content Content `yaml:"content"`
	Texture Texture `yaml:"texture"`
	Sphere  Sphere  `yaml:"sphere"`
	Log     Log     `yaml:"log"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Demo: "wrapping",
		Window: Window{
			Title:      "OpenGL Essentials",
			Width:      1024,
			Height:     768,
			VSync:      true,
			Background: [4]float32{0.392, 0.584, 0.929, 1},
		},
		Camera: Camera{
			FieldOfView: 45,
			Near:        0.01,
			Far:         1000,
			Position:    [3]float32{0, 5, 20},
		},
		Texture: Texture{
			Mipmaps:  true,
			NTSCSafe: true,
		},
		Sphere: Sphere{
			Radius: 1,
			Slices: 64,
			Stacks: 32,
		},
		Log: Log{
			Level:  "info",
			Pretty: true,
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values; unknown keys are an error.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML over the defaults.
func Parse(b []byte) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return c, nil
}

// Write encodes c as YAML.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// Validate reports every invalid setting. demos lists the accepted demo
// names.
func (c *Config) Validate(demos []string) error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if !slices.Contains(demos, c.Demo) {
		invalid("unknown demo %q, expected one of %v", c.Demo, demos)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		invalid("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= 180 {
		invalid("camera fov %v must be between 0 and 180 degrees", c.Camera.FieldOfView)
	}
	if c.Camera.Near <= 0 {
		invalid("camera near plane %v must be positive", c.Camera.Near)
	}
	if c.Camera.Near >= c.Camera.Far {
		invalid("camera near plane %v must be closer than far plane %v", c.Camera.Near, c.Camera.Far)
	}
	if c.Content.Watch && c.Content.Dir == "" {
		invalid("content watch requires a content dir")
	}
	if c.Sphere.Radius <= 0 {
		invalid("sphere radius %v must be positive", c.Sphere.Radius)
	}
	if c.Sphere.Slices < 3 || c.Sphere.Stacks < 2 {
		invalid("sphere needs at least 3 slices and 2 stacks, got %d and %d", c.Sphere.Slices, c.Sphere.Stacks)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		invalid("log level %q", c.Log.Level)
	}

	return errors.Join(errs...)
}
