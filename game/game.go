// Package game is a small component framework for frame-driven demos.
// A Game owns an ordered list of components, a service container they draw
// shared objects from, and the keyboard handler registry its window
// dispatches into.
package game

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/plus3/glsamples/gametime"
	"github.com/plus3/glsamples/input"
	"github.com/rs/zerolog"
)

// Window is the surface a Game presents frames on.
type Window interface {
	ShouldClose() bool
	SetShouldClose(bool)
	// BeginFrame prepares the back buffer before components draw.
	BeginFrame()
	// EndFrame presents the frame and processes pending window events.
	EndFrame()
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger provided to components.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Game) { g.log = log }
}

// WithClock replaces the system clock used by Run.
func WithClock(clock *gametime.Clock) Option {
	return func(g *Game) { g.clock = clock }
}

// Game manages and drives components in registration order.
type Game struct {
	window      Window
	services    *Services
	handlers    *input.Handlers
	clock       *gametime.Clock
	log         zerolog.Logger
	time        gametime.GameTime
	components  []Component
	stats       []*componentStatsInternal
	initialized int
	frames      int64
	escape      input.HandlerID
}

// New creates a game presenting on window. The game provides itself, its
// keyboard handler registry and its logger as services.
func New(window Window, opts ...Option) *Game {
	g := &Game{
		window:   window,
		services: NewServices(),
		handlers: input.NewHandlers(),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.clock == nil {
		g.clock = gametime.NewClock(nil)
	}

	Provide(g.services, g)
	Provide(g.services, g.handlers)
	Provide(g.services, g.log)
	return g
}

// Window returns the window the game presents on.
func (g *Game) Window() Window { return g.window }

// Services returns the service container.
func (g *Game) Services() *Services { return g.services }

// Handlers returns the keyboard handler registry.
func (g *Game) Handlers() *input.Handlers { return g.handlers }

// Logger returns the game logger.
func (g *Game) Logger() zerolog.Logger { return g.log }

// GameTime returns the time of the most recent frame pumped by Run.
func (g *Game) GameTime() gametime.GameTime { return g.time }

// Components returns the registered components in registration order.
func (g *Game) Components() []Component { return g.components }

// Exit asks the window to close, ending Run after the current frame.
func (g *Game) Exit() { g.window.SetShouldClose(true) }

// Register adds a component and initializes its Service fields.
func (g *Game) Register(component Component) {
	g.injectServices(component)
	g.components = append(g.components, component)

	g.stats = append(g.stats, &componentStatsInternal{
		name:   componentName(component),
		update: newTimingInternal(),
		draw:   newTimingInternal(),
	})
}

func componentName(component Component) string {
	componentType := reflect.TypeOf(component)
	if componentType.Kind() == reflect.Ptr {
		componentType = componentType.Elem()
	}
	return componentType.Name()
}

func (g *Game) injectServices(component Component) {
	componentValue := reflect.ValueOf(component)
	if componentValue.Kind() == reflect.Ptr {
		componentValue = componentValue.Elem()
	}

	if componentValue.Kind() != reflect.Struct {
		return
	}

	componentType := componentValue.Type()

	for i := 0; i < componentValue.NumField(); i++ {
		field := componentValue.Field(i)
		fieldType := componentType.Field(i)

		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		if !strings.HasPrefix(field.Type().Name(), "Service[") {
			continue
		}

		initMethod := field.Addr().MethodByName("Init")
		if !initMethod.IsValid() {
			panic("Init method not found on Service field: " + fieldType.Name)
		}

		initMethod.Call([]reflect.Value{
			reflect.ValueOf(g.services),
		})
	}
}

// Initialize prepares every component registered since the last call, in
// registration order, and installs the Escape handler that closes the
// window. The first failure stops initialization.
func (g *Game) Initialize() error {
	if g.escape == 0 {
		g.escape = g.handlers.Add(input.OnPress(input.KeyEscape, g.Exit))
	}

	for g.initialized < len(g.components) {
		component := g.components[g.initialized]
		if initializer, ok := component.(Initializer); ok {
			if err := initializer.Initialize(); err != nil {
				return fmt.Errorf("initialize %s: %w", g.stats[g.initialized].name, err)
			}
			g.log.Debug().Str("component", g.stats[g.initialized].name).Msg("component initialized")
		}
		g.initialized++
	}
	return nil
}

// Tick runs one frame: Update on every enabled component, then Draw on every
// visible drawable between Window.BeginFrame and Window.EndFrame.
func (g *Game) Tick(gt gametime.GameTime) {
	for i, component := range g.components {
		if e, ok := component.(enabler); ok && !e.Enabled() {
			continue
		}

		start := time.Now()
		component.Update(gt)
		g.stats[i].update.record(time.Since(start))
	}

	g.window.BeginFrame()
	for i, component := range g.components {
		drawable, ok := component.(Drawable)
		if !ok {
			continue
		}
		if v, ok := component.(visibler); ok && !v.Visible() {
			continue
		}

		start := time.Now()
		drawable.Draw(gt)
		g.stats[i].draw.record(time.Since(start))
	}
	g.window.EndFrame()

	g.frames++
}

// Run pumps frames until the window asks to close or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	g.clock.Reset()
	g.time = gametime.GameTime{}

	for !g.window.ShouldClose() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		g.clock.UpdateGameTime(&g.time)
		g.Tick(g.time)
	}

	g.log.Info().Int64("frames", g.frames).Dur("total", g.time.TotalDuration()).Msg("game loop finished")
	return nil
}

// Close releases components in reverse registration order and removes the
// Escape handler. Every component is closed even if an earlier one fails.
func (g *Game) Close() error {
	var errs []error
	for i := len(g.components) - 1; i >= 0; i-- {
		closer, ok := g.components[i].(Closer)
		if !ok {
			continue
		}
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", g.stats[i].name, err))
		}
	}

	if g.escape != 0 {
		g.handlers.Remove(g.escape)
		g.escape = 0
	}
	return errors.Join(errs...)
}
