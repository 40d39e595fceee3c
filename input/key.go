// Package input defines keyboard and mouse state shared by game components.
// Key, action and modifier values use GLFW numbering so a GLFW window can
// forward its events without translation tables.
package input

// Key identifies a physical keyboard key.
type Key int

const (
	KeyUnknown  Key = -1
	KeySpace    Key = 32
	KeyA        Key = 65
	KeyD        Key = 68
	KeyS        Key = 83
	KeyW        Key = 87
	KeyEscape   Key = 256
	KeyEnter    Key = 257
	KeyTab      Key = 258
	KeyRight    Key = 262
	KeyLeft     Key = 263
	KeyDown     Key = 264
	KeyUp       Key = 265
	KeyPageUp   Key = 266
	KeyPageDown Key = 267
	KeyHome     Key = 268
	KeyEnd      Key = 269
)

var keyNames = map[Key]string{
	KeySpace:    "Space",
	KeyA:        "A",
	KeyD:        "D",
	KeyS:        "S",
	KeyW:        "W",
	KeyEscape:   "Escape",
	KeyEnter:    "Enter",
	KeyTab:      "Tab",
	KeyRight:    "Right",
	KeyLeft:     "Left",
	KeyDown:     "Down",
	KeyUp:       "Up",
	KeyPageUp:   "PageUp",
	KeyPageDown: "PageDown",
	KeyHome:     "Home",
	KeyEnd:      "End",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Action is the transition reported with a key or button event.
type Action int

const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

func (a Action) String() string {
	switch a {
	case Release:
		return "Release"
	case Press:
		return "Press"
	case Repeat:
		return "Repeat"
	}
	return "Unknown"
}

// ModifierKey is a bit set of held modifier keys.
type ModifierKey int

const (
	ModShift   ModifierKey = 0x0001
	ModControl ModifierKey = 0x0002
	ModAlt     ModifierKey = 0x0004
	ModSuper   ModifierKey = 0x0008
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// Keyboard reports whether a key is currently held.
type Keyboard interface {
	KeyDown(key Key) bool
}

// Mouse reports the cursor position in window coordinates and button state.
type Mouse interface {
	CursorPosition() (x, y float64)
	ButtonDown(button MouseButton) bool
}
