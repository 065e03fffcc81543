package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/neonmaze/internal/engine/input"
	"github.com/Faultbox/neonmaze/internal/game/world"
)

// PlayingState runs the simulation and draws the maze.
type PlayingState struct {
	env   *Env
	level *Level
	clock world.Clock

	start    float64 // ms of the first Update
	t        float32 // seconds since start, drives animation
	wantShot bool
}

// NewPlayingState creates a playing state for lvl.
func NewPlayingState(env *Env, lvl *Level) *PlayingState {
	return &PlayingState{env: env, level: lvl}
}

// Level returns the level being played.
func (s *PlayingState) Level() *Level {
	return s.level
}

// Enter resets the clock.
func (s *PlayingState) Enter() error {
	s.clock = world.Clock{MaxStep: s.env.Config.World.MaxStep}
	s.start = -1
	s.t = 0
	s.env.logger().Info("playing",
		zap.String("scheme", s.env.Config.World.Scheme),
		zap.Int("pickups", len(s.level.World.LivePickups())),
	)
	return nil
}

// Exit is called when leaving this state.
func (s *PlayingState) Exit() error {
	return nil
}

// Update handles one-shot keys and advances the world.
func (s *PlayingState) Update(nowMs float64) error {
	env := s.env
	log := env.logger()

	if env.Input.Consume(input.KeyQuit) {
		env.quit()
		return nil
	}
	if env.Input.Consume(input.KeyDebug) {
		on := env.Scene.Debug.ToggleBoxes()
		log.Debug("collision boxes", zap.Bool("visible", on))
	}
	if env.Input.Consume(input.KeyScreenshot) {
		s.wantShot = true
	}

	if s.start < 0 {
		s.start = nowMs
	}
	s.t = float32((nowMs - s.start) / 1000)

	dt := s.clock.Step(nowMs)
	report := s.level.World.Update(dt, env.Input.Intent(), nowMs)
	for _, ev := range report.Events {
		switch ev.Kind {
		case world.EventPickup:
			env.play(env.Config.Audio.PickupSound)
			log.Debug("pickup collected", zap.Int("total", s.level.World.Collected()))
		case world.EventHazard:
			env.play(env.Config.Audio.HazardSound)
			log.Info("hazard contact",
				zap.String("hazard", ev.Name),
				zap.Int("lives", s.level.World.Lives()),
			)
		case world.EventGameOver:
			env.States.Change(NewGameOverState(env, s.level, s.t))
		}
	}
	return nil
}

// Render draws the level and takes a pending screenshot.
func (s *PlayingState) Render() error {
	renderLevel(s.env, s.level, s.t)
	if s.wantShot {
		s.wantShot = false
		capture(s.env)
	}
	return nil
}

func capture(env *Env) {
	if env.Shots == nil {
		return
	}
	path, err := env.Shots.Capture()
	if err != nil {
		env.logger().Warn("screenshot failed", zap.Error(err))
		return
	}
	env.logger().Info("screenshot saved", zap.String("path", path))
}
