package states

import (
	"context"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/neonmaze/internal/engine/scene"
	"github.com/Faultbox/neonmaze/pkg/formats"
	"github.com/Faultbox/neonmaze/pkg/math"
)

// loadResult is what the background loader hands back to the main thread.
type loadResult struct {
	meshes map[string]*formats.OBJ
	sounds map[string][]byte
	err    error
}

// LoadingState fetches assets off the main thread, then uploads them and
// builds the level. GPU uploads happen in Update, on the thread that owns
// the GL context.
type LoadingState struct {
	env *Env

	cancel  context.CancelFunc
	results chan loadResult
	done    chan struct{}

	started time.Time
	level   *Level
}

// NewLoadingState creates a new loading state.
func NewLoadingState(env *Env) *LoadingState {
	return &LoadingState{env: env}
}

// Enter starts the background load.
func (s *LoadingState) Enter() error {
	log := s.env.logger()
	cfg := s.env.Config

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.results = make(chan loadResult, 1)
	s.done = make(chan struct{})
	s.started = time.Now()
	s.level = nil

	names := MeshNames(cfg)
	sounds := []string{cfg.Audio.PickupSound, cfg.Audio.HazardSound}
	log.Info("loading assets", zap.Strings("meshes", names), zap.Int("roots", s.env.Assets.Roots()))

	go func() {
		defer close(s.done)

		var res loadResult
		res.meshes, res.err = s.env.Assets.LoadMeshes(ctx, names)

		res.sounds = make(map[string][]byte)
		for _, name := range sounds {
			if name == "" {
				continue
			}
			data, err := s.env.Assets.Load(ctx, name)
			if err != nil {
				res.err = multierr.Append(res.err, err)
				continue
			}
			res.sounds[name] = data
		}
		s.results <- res
	}()
	return nil
}

// Exit cancels a load still in flight.
func (s *LoadingState) Exit() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// Update finishes loading once the background work is done.
func (s *LoadingState) Update(_ float64) error {
	select {
	case res := <-s.results:
		s.finish(res)
	default:
	}
	return nil
}

// Render clears the screen while loading.
func (s *LoadingState) Render() error {
	r := s.env.Config.Render
	s.env.Scene.Begin(scene.Frame{
		View:       s.env.Camera.ViewMatrix(math.Vec3{}, 0),
		Projection: s.env.Camera.ProjectionMatrix(),
		Lighting:   lighting(r),
		Clear:      r.ClearColor,
	})
	s.env.Scene.End()
	return nil
}

// Wait blocks until the background load has finished.
func (s *LoadingState) Wait() {
	if s.done != nil {
		<-s.done
	}
}

// Level returns the built level, or nil while loading.
func (s *LoadingState) Level() *Level {
	return s.level
}

func (s *LoadingState) finish(res loadResult) {
	log := s.env.logger()
	cfg := s.env.Config

	for _, err := range multierr.Errors(res.err) {
		log.Warn("asset unavailable", zap.Error(err))
	}

	sc := s.env.Scene
	if err := sc.Upload(GroundMesh, scene.Ground(cfg.World.GroundSize, cfg.World.GroundY)); err != nil {
		log.Warn("ground upload failed", zap.Error(err))
	}
	if err := sc.Upload(PickupMesh, scene.Cube(cfg.Pickups.Radius)); err != nil {
		log.Warn("pickup upload failed", zap.Error(err))
	}
	for name, mesh := range res.meshes {
		if err := sc.Upload(name, mesh.VertexData); err != nil {
			log.Warn("mesh upload failed", zap.String("mesh", name), zap.Error(err))
		}
	}

	if s.env.Sounds != nil {
		for name, data := range res.sounds {
			if err := s.env.Sounds.Load(name, data); err != nil {
				log.Warn("sound decode failed", zap.String("sound", name), zap.Error(err))
			}
		}
	}

	s.level = BuildLevel(cfg, res.meshes, log)
	log.Info("loading complete",
		zap.Int("meshes", len(res.meshes)),
		zap.Int("sounds", len(res.sounds)),
		zap.Duration("elapsed", time.Since(s.started)),
	)
	s.env.States.Change(NewPlayingState(s.env, s.level))
}
