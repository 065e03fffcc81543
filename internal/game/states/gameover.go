package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/neonmaze/internal/engine/input"
)

// GameOverState freezes the last frame until the player restarts or quits.
type GameOverState struct {
	env      *Env
	level    *Level
	t        float32
	wantShot bool
}

// NewGameOverState creates a game over state for the finished level,
// frozen at animation time t.
func NewGameOverState(env *Env, lvl *Level, t float32) *GameOverState {
	return &GameOverState{env: env, level: lvl, t: t}
}

// Enter drops stale confirm presses so a held key does not restart at once.
func (s *GameOverState) Enter() error {
	s.env.Input.Consume(input.KeyConfirm)
	s.env.logger().Info("game over",
		zap.Int("collected", s.level.World.Collected()),
		zap.Int("lives", s.level.World.Lives()),
	)
	return nil
}

// Exit is called when leaving this state.
func (s *GameOverState) Exit() error {
	return nil
}

// Update waits for confirm (restart) or quit.
func (s *GameOverState) Update(_ float64) error {
	env := s.env
	switch {
	case env.Input.Consume(input.KeyQuit):
		env.quit()
	case env.Input.Consume(input.KeyConfirm):
		env.logger().Info("restarting")
		env.States.Change(NewPlayingState(env, s.level.Rebuild(env.Config, env.logger())))
	case env.Input.Consume(input.KeyScreenshot):
		s.wantShot = true
	}
	return nil
}

// Render keeps drawing the frozen level.
func (s *GameOverState) Render() error {
	renderLevel(s.env, s.level, s.t)
	if s.wantShot {
		s.wantShot = false
		capture(s.env)
	}
	return nil
}
