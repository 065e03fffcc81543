// Package config handles game configuration loading and management.
package config

import "time"

// Config holds all game settings.
type Config struct {
	Window  WindowConfig      `yaml:"window"`
	Audio   AudioConfig       `yaml:"audio"`
	World   WorldConfig       `yaml:"world"`
	Maze    MazeConfig        `yaml:"maze"`
	Player  CharacterConfig   `yaml:"player"`
	Enemies []CharacterConfig `yaml:"enemies"`
	Pickups PickupConfig      `yaml:"pickups"`
	Hazards HazardConfig      `yaml:"hazards"`
	Render  RenderConfig      `yaml:"render"`
	Assets  AssetsConfig      `yaml:"assets"`
	Logging LoggingConfig     `yaml:"logging"`
	Debug   DebugConfig       `yaml:"debug"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// AudioConfig holds sound effect settings.
type AudioConfig struct {
	MasterVolume float32 `yaml:"master_volume"`
	SFXVolume    float32 `yaml:"sfx_volume"`
	Muted        bool    `yaml:"muted"`
	PickupSound  string  `yaml:"pickup_sound"`
	HazardSound  string  `yaml:"hazard_sound"`
}

// WorldConfig holds play-area and simulation settings.
type WorldConfig struct {
	Limit      float32 `yaml:"limit"`    // half extent of the square play area
	MaxStep    float32 `yaml:"max_step"` // seconds
	Seed       uint64  `yaml:"seed"`
	Scheme     string  `yaml:"scheme"` // "free" or "tank"
	GroundSize float32 `yaml:"ground_size"`
	GroundY    float32 `yaml:"ground_y"`
	GridCell   float32 `yaml:"grid_cell"` // path grid resolution
}

// MazeConfig describes the static maze mesh.
type MazeConfig struct {
	Mesh           string     `yaml:"mesh"`
	VerticalOffset float32    `yaml:"vertical_offset"`
	Color          [4]float32 `yaml:"color"`
	Specular       [3]float32 `yaml:"specular"`
	Shininess      float32    `yaml:"shininess"`
}

// CharacterConfig describes the player or one enemy.
type CharacterConfig struct {
	Name             string     `yaml:"name"`
	Mesh             string     `yaml:"mesh"`
	Position         [3]float32 `yaml:"position"`
	Facing           float32    `yaml:"facing"` // degrees, 0 faces +Z
	Scale            float32    `yaml:"scale"`
	Speed            float32    `yaml:"speed"`
	TurnSpeed        float32    `yaml:"turn_speed"` // radians per second
	Radius           float32    `yaml:"radius"`
	Collider         string     `yaml:"collider"` // "circle" or "mesh"
	Color            [4]float32 `yaml:"color"`
	EmissionColor    [3]float32 `yaml:"emission_color"`
	EmissionStrength float32    `yaml:"emission_strength"`
	PulseSpeed       float32    `yaml:"pulse_speed"`
	BobAmplitude     float32    `yaml:"bob_amplitude"`
	BobSpeed         float32    `yaml:"bob_speed"`
	Behavior         string     `yaml:"behavior,omitempty"` // "idle", "seek", "path"
	IgnoreWalls      bool       `yaml:"ignore_walls,omitempty"`
	Hazard           bool       `yaml:"hazard,omitempty"`
}

// PickupConfig holds collectible settings.
type PickupConfig struct {
	Count          int           `yaml:"count"`
	Radius         float32       `yaml:"radius"`
	Margin         float32       `yaml:"margin"`
	Height         float32       `yaml:"height"`
	Policy         string        `yaml:"policy"` // "remove" or "reappear"
	RespawnDelay   time.Duration `yaml:"respawn_delay"`
	SpawnClearance float32       `yaml:"spawn_clearance"`
	Color          [4]float32    `yaml:"color"`
	EmissionColor  [3]float32    `yaml:"emission_color"`
}

// HazardConfig holds enemy contact settings.
type HazardConfig struct {
	Margin float32 `yaml:"margin"`
	Policy string  `yaml:"policy"` // "respawn" or "lose_life"
	Lives  int     `yaml:"lives"`
}

// RenderConfig holds camera, fog, and lighting settings.
type RenderConfig struct {
	FOV            float32    `yaml:"fov"` // degrees
	Near           float32    `yaml:"near"`
	Far            float32    `yaml:"far"`
	FogNear        float32    `yaml:"fog_near"`
	FogFar         float32    `yaml:"fog_far"`
	FogColor       [3]float32 `yaml:"fog_color"`
	ClearColor     [3]float32 `yaml:"clear_color"`
	CameraDistance float32    `yaml:"camera_distance"`
	CameraHeight   float32    `yaml:"camera_height"`
	LightDirection [3]float32 `yaml:"light_direction"`
	Ambient        [3]float32 `yaml:"ambient"`
}

// AssetsConfig holds asset source settings.
type AssetsConfig struct {
	Roots       []string      `yaml:"roots"` // directories or http(s) base URLs; later roots win
	CacheDir    string        `yaml:"cache_dir"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	Concurrency int           `yaml:"concurrency"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig holds developer toggles.
type DebugConfig struct {
	ShowBoxes     bool   `yaml:"show_boxes"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Neon Maze",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
			SFXVolume:    0.8,
			PickupSound:  "sfx/pickup.wav",
			HazardSound:  "sfx/hazard.wav",
		},
		World: WorldConfig{
			Limit:      9,
			MaxStep:    0.05,
			Seed:       1,
			Scheme:     "free",
			GroundSize: 22,
			GroundY:    -1.2,
			GridCell:   0.5,
		},
		Maze: MazeConfig{
			Mesh:           "modelo/labirinth.obj",
			VerticalOffset: -1,
			Color:          [4]float32{0.03, 0.15, 0.35, 1},
			Specular:       [3]float32{0.3, 0.3, 0.5},
			Shininess:      12,
		},
		Player: CharacterConfig{
			Name:             "pacman",
			Mesh:             "pac_man.obj",
			Facing:           180,
			Scale:            0.8,
			Speed:            4,
			TurnSpeed:        3.14159,
			Radius:           0.4,
			Collider:         "circle",
			Color:            [4]float32{1, 1, 0, 1},
			EmissionColor:    [3]float32{1, 1, 0.3},
			EmissionStrength: 0.8,
			PulseSpeed:       2.5,
		},
		Enemies: []CharacterConfig{
			defaultGhost("ghost_red", [3]float32{-4, 0, -2}, [4]float32{1, 0, 0.1, 1}, [3]float32{1, 0.2, 0.2}),
			defaultGhost("ghost_pink", [3]float32{4, 0, -2}, [4]float32{1, 0.4, 0.8, 1}, [3]float32{1, 0.4, 0.9}),
			defaultGhost("ghost_blue", [3]float32{-2, 0, -5}, [4]float32{0.3, 0.5, 1, 1}, [3]float32{0.3, 0.6, 1}),
			defaultGhost("ghost_yellow", [3]float32{2, 0, -5}, [4]float32{1, 0.85, 0.2, 1}, [3]float32{1, 0.9, 0.3}),
		},
		Pickups: PickupConfig{
			Count:          12,
			Radius:         0.25,
			Margin:         0.1,
			Height:         0,
			Policy:         "remove",
			RespawnDelay:   5 * time.Second,
			SpawnClearance: 2,
			Color:          [4]float32{1, 0.3, 0.3, 1},
			EmissionColor:  [3]float32{1, 0.4, 0.4},
		},
		Hazards: HazardConfig{
			Margin: 0,
			Policy: "respawn",
			Lives:  3,
		},
		Render: RenderConfig{
			FOV:            60,
			Near:           0.1,
			Far:            80,
			FogNear:        20,
			FogFar:         60,
			FogColor:       [3]float32{0.02, 0.02, 0.05},
			ClearColor:     [3]float32{0.02, 0.02, 0.04},
			CameraDistance: 10,
			CameraHeight:   4,
			LightDirection: [3]float32{-0.6, 1, 0.8},
			Ambient:        [3]float32{0.15, 0.15, 0.15},
		},
		Assets: AssetsConfig{
			Roots:       []string{"assets"},
			HTTPTimeout: 10 * time.Second,
			Concurrency: 4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
	}
}

func defaultGhost(name string, pos [3]float32, color [4]float32, emission [3]float32) CharacterConfig {
	return CharacterConfig{
		Name:             name,
		Mesh:             name + ".obj",
		Position:         pos,
		Scale:            0.8,
		Radius:           0.4,
		Collider:         "circle",
		Color:            color,
		EmissionColor:    emission,
		EmissionStrength: 0.7,
		Behavior:         "idle",
		Hazard:           true,
	}
}
