// Package platform opens the GLFW window and OpenGL 4.1 core context the
// demos render into, and adapts it to the game and input interfaces.
package platform

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/glsamples/input"
)

// Options describe the window to open.
type Options struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	// Background is the color the back buffer is cleared to each frame.
	Background mgl32.Vec4
}

// Window is a GLFW window with a current OpenGL context. It must be used
// from the thread that opened it.
type Window struct {
	win        *glfw.Window
	background mgl32.Vec4
	handlers   *input.Handlers
	onResize   func(width, height int)
}

// Open initializes GLFW, creates the window and loads the GL functions.
func Open(opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	width, height := opts.Width, opts.Height
	var monitor *glfw.Monitor
	if opts.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		width, height = mode.Width, mode.Height
	}

	win, err := glfw.CreateWindow(width, height, opts.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("initialize gl: %w", err)
	}

	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{win: win, background: opts.Background}

	win.SetKeyCallback(w.keyCallback)
	win.SetFramebufferSizeCallback(w.framebufferSizeCallback)

	fbWidth, fbHeight := win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	return w, nil
}

// Version returns the GL version string of the context.
func (w *Window) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Renderer returns the GL renderer string of the context.
func (w *Window) Renderer() string {
	return gl.GoStr(gl.GetString(gl.RENDERER))
}

// SetHandlers routes key events to handlers.
func (w *Window) SetHandlers(handlers *input.Handlers) {
	w.handlers = handlers
}

// OnResize registers fn to run after the framebuffer changes size.
func (w *Window) OnResize(fn func(width, height int)) {
	w.onResize = fn
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if w.handlers == nil {
		return
	}
	w.handlers.Dispatch(input.Key(key), scancode, input.Action(action), input.ModifierKey(mods))
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	if w.onResize != nil && width > 0 && height > 0 {
		w.onResize(width, height)
	}
}

// AspectRatio returns the framebuffer width over height.
func (w *Window) AspectRatio() float32 {
	width, height := w.win.GetFramebufferSize()
	if height == 0 {
		return 1
	}
	return float32(width) / float32(height)
}

func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

func (w *Window) SetShouldClose(close bool) { w.win.SetShouldClose(close) }

// BeginFrame clears color and depth.
func (w *Window) BeginFrame() {
	gl.ClearColor(w.background[0], w.background[1], w.background[2], w.background[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// EndFrame presents the back buffer and processes window events.
func (w *Window) EndFrame() {
	w.win.SwapBuffers()
	glfw.PollEvents()
}

// KeyDown reports whether key is currently held.
func (w *Window) KeyDown(key input.Key) bool {
	return w.win.GetKey(glfw.Key(key)) == glfw.Press
}

func (w *Window) CursorPosition() (x, y float64) {
	return w.win.GetCursorPos()
}

func (w *Window) ButtonDown(button input.MouseButton) bool {
	return w.win.GetMouseButton(glfw.MouseButton(button)) == glfw.Press
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}
