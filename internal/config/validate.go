package config

import (
	"fmt"

	"go.uber.org/multierr"
)

var (
	validSchemes      = map[string]bool{"free": true, "tank": true}
	validBehaviors    = map[string]bool{"": true, "idle": true, "seek": true, "path": true}
	validColliders    = map[string]bool{"": true, "circle": true, "mesh": true}
	validPickupPolicy = map[string]bool{"remove": true, "reappear": true}
	validHazardPolicy = map[string]bool{"respawn": true, "lose_life": true}
)

// Validate reports every nonsensical value at once.
func (c *Config) Validate() error {
	var err error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			err = multierr.Append(err, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	check(c.Audio.MasterVolume >= 0 && c.Audio.MasterVolume <= 1, "audio.master_volume %v out of [0,1]", c.Audio.MasterVolume)
	check(c.Audio.SFXVolume >= 0 && c.Audio.SFXVolume <= 1, "audio.sfx_volume %v out of [0,1]", c.Audio.SFXVolume)

	check(c.World.Limit > 0, "world.limit %v must be positive", c.World.Limit)
	check(c.World.MaxStep > 0, "world.max_step %v must be positive", c.World.MaxStep)
	check(validSchemes[c.World.Scheme], "world.scheme %q must be free or tank", c.World.Scheme)
	check(c.World.GridCell > 0, "world.grid_cell %v must be positive", c.World.GridCell)

	check(c.Maze.Mesh != "", "maze.mesh is required")

	err = multierr.Append(err, c.Player.validate("player"))
	for i, e := range c.Enemies {
		err = multierr.Append(err, e.validate(fmt.Sprintf("enemies[%d]", i)))
	}

	check(c.Pickups.Count >= 0, "pickups.count %d must not be negative", c.Pickups.Count)
	check(c.Pickups.Radius > 0, "pickups.radius %v must be positive", c.Pickups.Radius)
	check(c.Pickups.Margin >= 0, "pickups.margin %v must not be negative", c.Pickups.Margin)
	check(validPickupPolicy[c.Pickups.Policy], "pickups.policy %q must be remove or reappear", c.Pickups.Policy)
	check(c.Pickups.Policy != "reappear" || c.Pickups.RespawnDelay > 0, "pickups.respawn_delay must be positive for reappear")

	check(c.Hazards.Margin >= 0, "hazards.margin %v must not be negative", c.Hazards.Margin)
	check(validHazardPolicy[c.Hazards.Policy], "hazards.policy %q must be respawn or lose_life", c.Hazards.Policy)
	check(c.Hazards.Policy != "lose_life" || c.Hazards.Lives > 0, "hazards.lives must be positive for lose_life")

	check(c.Render.FOV > 0 && c.Render.FOV < 180, "render.fov %v out of (0,180)", c.Render.FOV)
	check(c.Render.Near > 0 && c.Render.Near < c.Render.Far, "render near/far %v/%v invalid", c.Render.Near, c.Render.Far)
	check(c.Render.FogNear < c.Render.FogFar, "render fog_near %v must be below fog_far %v", c.Render.FogNear, c.Render.FogFar)

	check(len(c.Assets.Roots) > 0, "assets.roots must list at least one root")
	check(c.Assets.Concurrency > 0, "assets.concurrency %d must be positive", c.Assets.Concurrency)

	return err
}

func (cc CharacterConfig) validate(field string) error {
	var err error
	if cc.Radius <= 0 {
		err = multierr.Append(err, fmt.Errorf("%s.radius %v must be positive", field, cc.Radius))
	}
	if cc.Speed < 0 {
		err = multierr.Append(err, fmt.Errorf("%s.speed %v must not be negative", field, cc.Speed))
	}
	if cc.Scale <= 0 {
		err = multierr.Append(err, fmt.Errorf("%s.scale %v must be positive", field, cc.Scale))
	}
	if !validBehaviors[cc.Behavior] {
		err = multierr.Append(err, fmt.Errorf("%s.behavior %q unknown", field, cc.Behavior))
	}
	if !validColliders[cc.Collider] {
		err = multierr.Append(err, fmt.Errorf("%s.collider %q unknown", field, cc.Collider))
	}
	return err
}
