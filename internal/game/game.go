// Package game implements the main game loop.
package game

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/neonmaze/internal/assets"
	"github.com/Faultbox/neonmaze/internal/config"
	"github.com/Faultbox/neonmaze/internal/engine/audio"
	"github.com/Faultbox/neonmaze/internal/engine/camera"
	"github.com/Faultbox/neonmaze/internal/engine/debug"
	"github.com/Faultbox/neonmaze/internal/engine/input"
	"github.com/Faultbox/neonmaze/internal/engine/renderer"
	"github.com/Faultbox/neonmaze/internal/engine/scene"
	"github.com/Faultbox/neonmaze/internal/engine/window"
	"github.com/Faultbox/neonmaze/internal/game/states"
)

// Game is the main game instance.
type Game struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	scene    *scene.Scene
	camera   *camera.FollowCamera
	input    *input.State
	audio    *audio.Manager
	assets   *assets.Manager
	states   *states.Manager
	log      *zap.Logger
}

// New creates the window, GL renderer, audio and asset roots.
// Audio and individual asset roots may fail without aborting startup.
func New(cfg *config.Config, log *zap.Logger) (*Game, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("initializing game",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	g := &Game{
		config: cfg,
		input:  input.New(),
		states: states.NewManager(),
		log:    log,
	}

	// Create window (this also creates OpenGL context)
	var err error
	g.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Drawable size can differ from the requested size on HiDPI screens.
	width, height := g.window.GetSize()

	// Create renderer (AFTER window, since OpenGL context must exist)
	g.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.scene = scene.New(g.renderer, log.Named("scene"))
	g.scene.Debug.ShowBoxes = cfg.Debug.ShowBoxes

	g.camera = camera.NewFollowCamera()
	g.camera.FOV = cfg.Render.FOV
	g.camera.Near = cfg.Render.Near
	g.camera.Far = cfg.Render.Far
	g.camera.Distance = cfg.Render.CameraDistance
	g.camera.Height = cfg.Render.CameraHeight
	g.camera.SetViewport(width, height)

	g.audio = audio.New()
	g.audio.SetMasterVolume(float64(cfg.Audio.MasterVolume))
	g.audio.SetSFXVolume(float64(cfg.Audio.SFXVolume))
	g.audio.SetMuted(cfg.Audio.Muted)
	if err := g.audio.Init(); err != nil {
		log.Warn("audio disabled", zap.Error(err))
	}

	g.assets = assets.NewManager(assets.Options{
		CacheDir:    cfg.Assets.CacheDir,
		HTTPTimeout: cfg.Assets.HTTPTimeout,
		Concurrency: cfg.Assets.Concurrency,
		Logger:      log.Named("assets"),
	})
	if err := g.assets.AddRoots(cfg.Assets.Roots); err != nil {
		log.Warn("some asset roots unavailable", zap.Error(err))
	}

	log.Info("game initialized successfully")
	return g, nil
}

// Run starts the main game loop and returns when the player quits or ctx ends.
func (g *Game) Run(ctx context.Context) error {
	g.running = true

	env := &states.Env{
		Config: g.config,
		Assets: g.assets,
		Scene:  g.scene,
		Camera: g.camera,
		Input:  g.input,
		States: g.states,
		Sounds: g.audio,
		Shots: &screenshotter{
			renderer: g.renderer,
			capture:  debug.NewScreenshotCapture(g.config.Debug.ScreenshotDir, "neonmaze"),
		},
		Quit: func() { g.running = false },
		Log:  g.log.Named("states"),
	}
	g.states.Change(states.NewLoadingState(env))

	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting game loop")

	for g.running {
		if ctx.Err() != nil {
			g.log.Info("interrupted")
			break
		}

		// 1. Process input
		events := g.window.PollEvents(g.input)
		if events.Quit {
			break
		}
		if events.Resized {
			g.renderer.Resize(events.Width, events.Height)
			g.camera.SetViewport(events.Width, events.Height)
		}

		// 2. Update game state
		if err := g.states.Update(g.window.Ticks()); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		// 3. Render
		if err := g.states.Render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		// 4. Present (swap buffers)
		g.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return g.states.Close()
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.audio != nil {
		g.audio.Close()
	}
	if g.assets != nil {
		g.assets.Close()
	}
	if g.scene != nil {
		g.scene.Release()
	}
	if g.window != nil {
		g.window.Close()
	}
}

// screenshotter reads the drawn frame back from the GPU.
type screenshotter struct {
	renderer *renderer.Renderer
	capture  *debug.ScreenshotCapture
}

func (s *screenshotter) Capture() (string, error) {
	pixels, w, h := s.renderer.ReadPixels()
	return s.capture.CaptureFromPixels(pixels, w, h)
}
