package game

import "github.com/plus3/glsamples/gametime"

// Component represents a behavior the game updates once per frame.
// Components can include Service fields, which are filled in when the
// component is registered, and custom state fields that persist between frames.
type Component interface {
	Update(gt gametime.GameTime)
}

// Initializer is implemented by components that acquire resources before
// the first frame. An error aborts game initialization.
type Initializer interface {
	Initialize() error
}

// Drawable is implemented by components that render each frame.
type Drawable interface {
	Component
	Draw(gt gametime.GameTime)
}

// Closer is implemented by components that release resources on shutdown.
type Closer interface {
	Close() error
}

type enabler interface {
	Enabled() bool
}

type visibler interface {
	Visible() bool
}

// Base carries the enabled flag. The zero value is enabled.
type Base struct {
	disabled bool
}

// Enabled reports whether the game calls Update on the component.
func (b *Base) Enabled() bool { return !b.disabled }

// SetEnabled toggles updates.
func (b *Base) SetEnabled(enabled bool) { b.disabled = !enabled }

// Update does nothing; components with per-frame logic define their own.
func (b *Base) Update(gametime.GameTime) {}

// DrawableBase adds the visible flag to Base. The zero value is visible.
type DrawableBase struct {
	Base
	hidden bool
}

// Visible reports whether the game calls Draw on the component.
func (d *DrawableBase) Visible() bool { return !d.hidden }

// SetVisible toggles drawing.
func (d *DrawableBase) SetVisible(visible bool) { d.hidden = !visible }
