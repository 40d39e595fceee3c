// Package content holds the demos' shaders and models. Assets are embedded
// in the binary and can be overridden by a directory with the same layout.
package content

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed effects models
var embedded embed.FS

// Asset paths, relative to the content root.
const (
	WrappingModesVertex     = "effects/WrappingModesDemo.vert"
	WrappingModesFragment   = "effects/WrappingModesDemo.frag"
	AmbientLightingVertex   = "effects/AmbientLightingDemo.vert"
	AmbientLightingFragment = "effects/AmbientLightingDemo.frag"
	DiffuseLightingVertex   = "effects/DiffuseLightingDemo.vert"
	DiffuseLightingFragment = "effects/DiffuseLightingDemo.frag"
	BasicEffectVertex       = "effects/BasicEffect.vert"
	BasicEffectFragment     = "effects/BasicEffect.frag"

	DirectionalLightProxyModel = "models/DirectionalLightProxy.obj"
)

// Source is a content root. Dir is empty for embedded content.
type Source struct {
	FS  fs.FS
	Dir string
}

// Embedded returns the content compiled into the binary.
func Embedded() Source {
	return Source{FS: embedded}
}

// Open returns the content under dir, or the embedded content when dir is
// empty.
func Open(dir string) Source {
	if dir == "" {
		return Embedded()
	}
	return Source{FS: os.DirFS(dir), Dir: dir}
}

// OnDisk reports whether the content can change while the program runs.
func (s Source) OnDisk() bool {
	return s.Dir != ""
}

// Path returns the operating system path of an asset, or "" for embedded
// content.
func (s Source) Path(name string) string {
	if !s.OnDisk() {
		return ""
	}
	return filepath.Join(s.Dir, filepath.FromSlash(name))
}

// ReadFile reads an asset.
func (s Source) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(s.FS, name)
}
