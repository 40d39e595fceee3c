package input

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// KeyboardHandler receives key events as they are reported by the window.
type KeyboardHandler func(key Key, scancode int, action Action, mods ModifierKey)

// HandlerID identifies a registered KeyboardHandler.
type HandlerID uint32

// Handlers is the keyboard handler registry a window dispatches into.
// It is used from the render thread only.
type Handlers struct {
	nextID   HandlerID
	order    []HandlerID
	handlers *intmap.Map[HandlerID, KeyboardHandler]
}

// NewHandlers creates an empty registry.
func NewHandlers() *Handlers {
	return &Handlers{
		handlers: intmap.New[HandlerID, KeyboardHandler](8),
	}
}

// Add registers fn and returns the id used to remove it.
func (h *Handlers) Add(fn KeyboardHandler) HandlerID {
	if fn == nil {
		panic("input: nil keyboard handler")
	}
	h.nextID++
	id := h.nextID
	h.handlers.Put(id, fn)
	h.order = append(h.order, id)
	return id
}

// Remove unregisters the handler with the given id. Unknown ids are ignored.
func (h *Handlers) Remove(id HandlerID) bool {
	if !h.handlers.Del(id) {
		return false
	}
	if i := slices.Index(h.order, id); i >= 0 {
		h.order = slices.Delete(h.order, i, i+1)
	}
	return true
}

// Len returns the number of registered handlers.
func (h *Handlers) Len() int {
	return h.handlers.Len()
}

// Dispatch calls every handler in registration order. A handler added
// during dispatch first sees the next event.
func (h *Handlers) Dispatch(key Key, scancode int, action Action, mods ModifierKey) {
	ids := slices.Clone(h.order)
	for _, id := range ids {
		if fn, ok := h.handlers.Get(id); ok {
			fn(key, scancode, action, mods)
		}
	}
}

// OnPress returns a handler that runs fn when key is pressed.
func OnPress(key Key, fn func()) KeyboardHandler {
	return func(k Key, _ int, action Action, _ ModifierKey) {
		if k == key && action == Press {
			fn()
		}
	}
}
