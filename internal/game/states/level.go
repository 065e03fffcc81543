package states

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/neonmaze/internal/collision"
	"github.com/Faultbox/neonmaze/internal/config"
	"github.com/Faultbox/neonmaze/internal/game/entity"
	"github.com/Faultbox/neonmaze/internal/game/world"
	"github.com/Faultbox/neonmaze/pkg/formats"
	"github.com/Faultbox/neonmaze/pkg/math"
)

// Names of the procedural meshes uploaded alongside the loaded ones.
const (
	GroundMesh = "ground"
	PickupMesh = "pickup"
)

// Level is a built world plus the data needed to draw or rebuild it.
type Level struct {
	World  *world.World
	Grid   *world.Grid // nil unless an enemy plans paths
	Boxes  []collision.AABB
	Meshes map[string]*formats.OBJ
}

// MeshNames lists every mesh the configuration refers to, maze first.
func MeshNames(cfg *config.Config) []string {
	names := []string{cfg.Maze.Mesh}
	if cfg.Player.Mesh != "" {
		names = append(names, cfg.Player.Mesh)
	}
	for _, e := range cfg.Enemies {
		if e.Mesh != "" {
			names = append(names, e.Mesh)
		}
	}
	return names
}

// Settings converts the configuration into world settings.
func Settings(cfg *config.Config) world.Settings {
	return world.Settings{
		Limit:          cfg.World.Limit,
		PickupRadius:   cfg.Pickups.Radius,
		PickupMargin:   cfg.Pickups.Margin,
		PickupHeight:   cfg.Pickups.Height,
		SpawnClearance: cfg.Pickups.SpawnClearance,
		HazardMargin:   cfg.Hazards.Margin,
		Lives:          cfg.Hazards.Lives,
		Seed:           cfg.World.Seed,
	}
}

// BuildLevel assembles a world from loaded meshes. Missing meshes degrade
// gracefully: no maze means no walls, no character mesh means a circle collider.
func BuildLevel(cfg *config.Config, meshes map[string]*formats.OBJ, log *zap.Logger) *Level {
	if log == nil {
		log = zap.NewNop()
	}

	var boxes []collision.AABB
	if maze, ok := meshes[cfg.Maze.Mesh]; ok {
		boxes = collision.BuildAABBs(maze.Positions, cfg.Maze.VerticalOffset)
	} else {
		log.Warn("maze mesh missing, walls disabled", zap.String("mesh", cfg.Maze.Mesh))
	}
	resolver := collision.NewResolver(boxes)

	w := world.New(resolver, Settings(cfg), log.Named("world"))
	w.SetScheme(world.SchemeByName(cfg.World.Scheme))
	w.SetPickupPolicy(world.PickupPolicyByName(cfg.Pickups.Policy, durationMs(cfg.Pickups.RespawnDelay)))
	w.SetHazardPolicy(world.HazardPolicyByName(cfg.Hazards.Policy))

	player := newCharacter(w.Entities().NextID(), entity.TypePlayer, cfg.Player, meshes)
	w.SetPlayer(player)

	lvl := &Level{World: w, Boxes: resolver.Boxes(), Meshes: meshes}
	for _, ec := range cfg.Enemies {
		if ec.Behavior == "path" && lvl.Grid == nil {
			lvl.Grid = world.NewGrid(resolver, cfg.World.Limit, cfg.World.GridCell, ec.Radius)
		}
		c := newCharacter(w.Entities().NextID(), entity.TypeEnemy, ec, meshes)
		w.AddEnemy(c, world.BehaviorByName(ec.Behavior, lvl.Grid))
	}

	placed := w.SpawnPickups(cfg.Pickups.Count)

	log.Info("level built",
		zap.Int("boxes", len(boxes)),
		zap.Int("enemies", len(cfg.Enemies)),
		zap.Int("pickups", placed),
		zap.String("scheme", cfg.World.Scheme),
	)
	return lvl
}

// Rebuild returns a fresh level from the same meshes.
func (l *Level) Rebuild(cfg *config.Config, log *zap.Logger) *Level {
	return BuildLevel(cfg, l.Meshes, log)
}

func newCharacter(id uint32, t entity.Type, cc config.CharacterConfig, meshes map[string]*formats.OBJ) *entity.Character {
	pos := math.Vec3{X: cc.Position[0], Y: cc.Position[1], Z: cc.Position[2]}
	c := entity.NewCharacter(id, t, cc.Name, pos)
	c.Mesh = cc.Mesh
	c.SetFacing(math.Radians(cc.Facing))
	c.Speed = cc.Speed
	if cc.TurnSpeed > 0 {
		c.TurnSpeed = cc.TurnSpeed
	}
	c.Radius = cc.Radius
	c.Scale = cc.Scale
	c.Color = cc.Color
	c.EmissionColor = cc.EmissionColor
	c.EmissionStrength = cc.EmissionStrength
	c.PulseSpeed = cc.PulseSpeed
	c.BobAmplitude = cc.BobAmplitude
	c.BobSpeed = cc.BobSpeed
	c.IgnoreWalls = cc.IgnoreWalls
	c.Hazard = cc.Hazard

	if cc.Collider == "mesh" {
		if m, ok := meshes[cc.Mesh]; ok && !m.Empty() {
			c.Shape = collision.NewBoxSet(m.Positions, cc.Scale)
		}
	}
	return c
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
