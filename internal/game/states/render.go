package states

import (
	"github.com/Faultbox/neonmaze/internal/config"
	"github.com/Faultbox/neonmaze/internal/engine/scene"
	"github.com/Faultbox/neonmaze/internal/game/entity"
	"github.com/Faultbox/neonmaze/pkg/math"
)

var groundMaterial = scene.Material{
	Diffuse:   [4]float32{0.05, 0.05, 0.08, 1},
	Specular:  [3]float32{0.1, 0.1, 0.2},
	Shininess: 8,
}

func lighting(r config.RenderConfig) scene.Lighting {
	d := r.LightDirection
	return scene.Lighting{
		Direction: math.Vec3{X: d[0], Y: d[1], Z: d[2]}.Normalize(),
		Ambient:   r.Ambient,
		FogNear:   r.FogNear,
		FogFar:    r.FogFar,
		FogColor:  r.FogColor,
	}
}

// renderLevel draws one frame of lvl at t seconds.
func renderLevel(env *Env, lvl *Level, t float32) {
	cfg := env.Config
	w := lvl.World

	var target math.Vec3
	var facing float32
	player := w.Player()
	if player != nil {
		target, facing = player.Position, player.Facing
	}

	view := env.Camera.ViewMatrix(target, facing)
	frame := scene.Frame{
		View:       view,
		Projection: env.Camera.ProjectionMatrix(),
		Eye:        env.Camera.Eye,
		Lighting:   lighting(cfg.Render),
		Clear:      cfg.Render.ClearColor,
		Time:       t,
	}

	s := env.Scene
	s.Begin(frame)

	s.Draw(scene.Object{Mesh: GroundMesh, World: math.Identity(), Material: groundMaterial})
	s.Draw(scene.Object{
		Mesh:  cfg.Maze.Mesh,
		World: math.Translate(0, cfg.Maze.VerticalOffset, 0),
		Material: scene.Material{
			Diffuse:   cfg.Maze.Color,
			Specular:  cfg.Maze.Specular,
			Shininess: cfg.Maze.Shininess,
		},
	})

	for _, c := range w.Entities().All() {
		drawCharacter(s, c, t)
	}

	pickupMat := scene.Material{
		Diffuse:          cfg.Pickups.Color,
		Emission:         cfg.Pickups.EmissionColor,
		EmissionStrength: 1,
		Specular:         [3]float32{1, 1, 1},
		Shininess:        32,
	}
	for _, p := range w.LivePickups() {
		s.Draw(scene.Object{Mesh: PickupMesh, World: math.Model(p.Position, p.Spin(t), 1), Material: pickupMat})
	}

	highlight := -1
	if player != nil {
		highlight = w.Controller().Contact(player).Index
	}
	s.DrawBoxes(lvl.Boxes, highlight)

	s.End()
}

func drawCharacter(s *scene.Scene, c *entity.Character, t float32) {
	pos := c.Position
	pos.Y += c.BobOffset(t)
	s.Draw(scene.Object{
		Mesh:  c.Mesh,
		World: math.Model(pos, c.Facing, c.Scale),
		Material: scene.Material{
			Diffuse:          c.Color,
			Specular:         [3]float32{0.6, 0.6, 0.6},
			Shininess:        32,
			Emission:         c.EmissionColor,
			EmissionStrength: c.EmissionAt(t),
		},
	})
}
