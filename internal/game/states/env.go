package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/neonmaze/internal/assets"
	"github.com/Faultbox/neonmaze/internal/config"
	"github.com/Faultbox/neonmaze/internal/engine/camera"
	"github.com/Faultbox/neonmaze/internal/engine/input"
	"github.com/Faultbox/neonmaze/internal/engine/scene"
)

// Sounds loads and plays named sound effects.
type Sounds interface {
	Load(name string, data []byte) error
	Play(name string) error
}

// Screenshotter captures the current frame.
type Screenshotter interface {
	Capture() (string, error)
}

// Env is what every state shares with the driver.
type Env struct {
	Config *config.Config
	Assets *assets.Manager
	Scene  *scene.Scene
	Camera *camera.FollowCamera
	Input  *input.State
	States *Manager

	// Optional
	Sounds Sounds
	Shots  Screenshotter
	Quit   func()

	Log *zap.Logger
}

func (e *Env) logger() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}

func (e *Env) quit() {
	if e.Quit != nil {
		e.Quit()
	}
}

func (e *Env) play(name string) {
	if e.Sounds == nil || name == "" {
		return
	}
	if err := e.Sounds.Play(name); err != nil {
		e.logger().Debug("sound not played", zap.String("sound", name), zap.Error(err))
	}
}
