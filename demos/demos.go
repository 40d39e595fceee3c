// Package demos registers the runnable demos by name.
package demos

import (
	"errors"
	"fmt"
	"slices"

	"github.com/plus3/glsamples/demos/ambient"
	"github.com/plus3/glsamples/demos/diffuse"
	"github.com/plus3/glsamples/demos/scene"
	"github.com/plus3/glsamples/demos/wrapping"
	"github.com/plus3/glsamples/game"
)

var ErrUnknownDemo = errors.New("demos: unknown demo")

// Factory creates a demo component from its options.
type Factory func(options scene.Options) game.Component

var registry = map[string]Factory{
	"wrapping": func(o scene.Options) game.Component { return wrapping.New(o) },
	"ambient":  func(o scene.Options) game.Component { return ambient.New(o) },
	"diffuse":  func(o scene.Options) game.Component { return diffuse.New(o) },
}

// Names returns the registered demo names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Known reports whether name is a registered demo.
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}

// New creates the named demo.
func New(name string, options scene.Options) (game.Component, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownDemo, name, Names())
	}
	return factory(options), nil
}
