package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/glsamples/camera"
	"github.com/plus3/glsamples/content"
	"github.com/plus3/glsamples/demos"
	"github.com/plus3/glsamples/demos/scene"
	"github.com/plus3/glsamples/game"
	"github.com/plus3/glsamples/hotreload"
	"github.com/plus3/glsamples/input"
	"github.com/plus3/glsamples/internal/config"
	"github.com/plus3/glsamples/internal/logging"
	"github.com/plus3/glsamples/internal/report"
	"github.com/plus3/glsamples/platform"
	"github.com/rs/zerolog"
)

// GLFW and OpenGL calls must come from the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML settings file. Defaults are used when empty.")
	demoName := flag.String("demo", "", "Demo to run (wrapping, ambient or diffuse). Overrides the settings file.")
	printReport := flag.Bool("report", false, "Print frame and per-component timings on exit.")
	printConfig := flag.Bool("print-config", false, "Print the effective settings and exit.")
	flag.Parse()

	log, _ := logging.New(os.Stderr, "info", true)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("config load failed")
		}
	}
	if *demoName != "" {
		cfg.Demo = *demoName
	}
	if err := cfg.Validate(demos.Names()); err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}

	if *printConfig {
		if err := cfg.Write(os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("print settings")
		}
		return
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Pretty)
	if err != nil {
		log.Fatal().Err(err).Msg("logger setup failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r, err := run(ctx, cfg, logger)
	if err != nil {
		stop()
		logger.Fatal().Err(err).Str("demo", cfg.Demo).Msg("demo failed")
	}

	if *printReport {
		if err := r.Generate(os.Stdout); err != nil {
			logger.Fatal().Err(err).Msg("failed to generate report")
		}
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) (r *report.Report, err error) {
	win, err := platform.Open(platform.Options{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Background: mgl32.Vec4(cfg.Window.Background),
	})
	if err != nil {
		return nil, err
	}
	defer win.Close()

	r = &report.Report{
		Demo:     cfg.Demo,
		Renderer: win.Renderer(),
		Version:  win.Version(),
	}
	log.Info().Str("renderer", r.Renderer).Str("version", r.Version).Msg("OpenGL context ready")

	g := game.New(win, game.WithLogger(log))
	defer func() {
		err = errors.Join(err, g.Close())
	}()
	win.SetHandlers(g.Handlers())
	game.Provide[input.Keyboard](g.Services(), win)
	game.Provide[input.Mouse](g.Services(), win)

	cam := camera.NewFirstPerson(camera.Settings{
		FieldOfView: cfg.Camera.FieldOfView,
		AspectRatio: win.AspectRatio(),
		Near:        cfg.Camera.Near,
		Far:         cfg.Camera.Far,
	})
	cam.SetPosition(mgl32.Vec3(cfg.Camera.Position))
	game.Provide(g.Services(), cam.Camera)
	win.OnResize(func(width, height int) {
		cam.SetAspectRatio(float32(width) / float32(height))
	})
	g.Register(cam)

	source := content.Open(cfg.Content.Dir)
	if cfg.Content.Watch {
		watcher, err := hotreload.New(source)
		if err != nil {
			return nil, err
		}
		game.Provide(g.Services(), watcher)
		g.Register(watcher)
	}

	demo, err := demos.New(cfg.Demo, sceneOptions(cfg, source))
	if err != nil {
		return nil, err
	}
	g.Register(demo)

	if err := g.Initialize(); err != nil {
		return nil, err
	}
	log.Info().Str("demo", cfg.Demo).Bool("watch", cfg.Content.Watch).Msg("demo started")

	runtime.ReadMemStats(&r.MemStatsStart)
	start := time.Now()
	if err := g.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return nil, err
	}
	r.TotalTime = time.Since(start)
	r.Stats = *g.Stats()
	runtime.ReadMemStats(&r.MemStatsEnd)

	return r, nil
}

func sceneOptions(cfg *config.Config, source content.Source) scene.Options {
	return scene.Options{
		Content:      source,
		Texture:      cfg.Texture.Path,
		Model:        cfg.Sphere.Model,
		Mipmaps:      cfg.Texture.Mipmaps,
		Compress:     cfg.Texture.Compress,
		NTSCSafe:     cfg.Texture.NTSCSafe,
		FlipY:        cfg.Texture.FlipY,
		SphereRadius: cfg.Sphere.Radius,
		SphereSlices: cfg.Sphere.Slices,
		SphereStacks: cfg.Sphere.Stacks,
	}
}
