// Package world runs the maze simulation: movement, pickups, and hazards.
package world

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/Faultbox/neonmaze/internal/collision"
	"github.com/Faultbox/neonmaze/internal/game/entity"
	"github.com/Faultbox/neonmaze/pkg/math"
)

// Settings are the gameplay constants of a world.
type Settings struct {
	Limit          float32 // half extent of the square play area
	PickupRadius   float32
	PickupMargin   float32
	PickupHeight   float32
	SpawnClearance float32 // minimum pickup distance from the player spawn
	HazardMargin   float32
	Lives          int
	Seed           uint64
}

// DefaultSettings returns the stock maze settings.
func DefaultSettings() Settings {
	return Settings{
		Limit:          9,
		PickupRadius:   0.25,
		PickupMargin:   0.1,
		PickupHeight:   0,
		SpawnClearance: 2,
		HazardMargin:   0,
		Lives:          3,
		Seed:           1,
	}
}

// EventKind identifies a gameplay event.
type EventKind uint8

const (
	EventPickup EventKind = iota
	EventHazard
	EventGameOver
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventPickup:
		return "pickup"
	case EventHazard:
		return "hazard"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is something that happened during an update.
type Event struct {
	Kind     EventKind
	Name     string // hazard name, empty for pickups
	Position math.Vec3
}

// World owns the resolver, characters, pickups, and scoring state.
// It is driven by a single update pass per frame and is not safe for
// concurrent use.
type World struct {
	settings   Settings
	resolver   *collision.Resolver
	controller Controller
	entities   *entity.Manager
	behaviors  map[uint32]Behavior
	pickups    []*entity.Pickup

	scheme       Scheme
	pickupPolicy PickupPolicy
	hazardPolicy HazardPolicy

	collected int
	lives     int
	gameOver  bool
	nextPick  uint32

	rng *rand.Rand
	log *zap.Logger
}

// New creates a world over the given walls. A nil resolver disables wall checks.
func New(resolver *collision.Resolver, settings Settings, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		settings:     settings,
		resolver:     resolver,
		controller:   Controller{Resolver: resolver, WorldLimit: settings.Limit},
		entities:     entity.NewManager(),
		behaviors:    make(map[uint32]Behavior),
		scheme:       FreeDirection{},
		pickupPolicy: RemovePickups{},
		hazardPolicy: Respawn{},
		lives:        settings.Lives,
		nextPick:     1,
		rng:          rand.New(rand.NewPCG(settings.Seed, settings.Seed^0x9e3779b97f4a7c15)),
		log:          log,
	}
}

// SetScheme sets the player control scheme.
func (w *World) SetScheme(s Scheme) {
	if s != nil {
		w.scheme = s
	}
}

// SetPickupPolicy sets what happens to collected pickups.
func (w *World) SetPickupPolicy(p PickupPolicy) {
	if p != nil {
		w.pickupPolicy = p
	}
}

// SetHazardPolicy sets the penalty for touching a hazard.
func (w *World) SetHazardPolicy(p HazardPolicy) {
	if p != nil {
		w.hazardPolicy = p
	}
}

// SetPlayer registers the controlled character.
func (w *World) SetPlayer(c *entity.Character) {
	w.entities.SetPlayer(c)
}

// AddEnemy registers an autonomous character. A nil behavior is Idle.
func (w *World) AddEnemy(c *entity.Character, b Behavior) {
	if b == nil {
		b = Idle{}
	}
	w.entities.Add(c)
	w.behaviors[c.ID] = b
}

// AddPickup places a live pickup at pos.
func (w *World) AddPickup(pos math.Vec3) *entity.Pickup {
	p := entity.NewPickup(w.nextPick, pos, w.settings.PickupRadius)
	w.nextPick++
	w.pickups = append(w.pickups, p)
	return p
}

// Player returns the controlled character, or nil.
func (w *World) Player() *entity.Character { return w.entities.Player() }

// Enemies returns the autonomous characters in registration order.
func (w *World) Enemies() []*entity.Character { return w.entities.Enemies() }

// Entities returns the character registry.
func (w *World) Entities() *entity.Manager { return w.entities }

// Pickups returns every tracked pickup, live or not.
func (w *World) Pickups() []*entity.Pickup { return w.pickups }

// LivePickups returns the pickups that can be collected.
func (w *World) LivePickups() []*entity.Pickup {
	live := make([]*entity.Pickup, 0, len(w.pickups))
	for _, p := range w.pickups {
		if p.Live() {
			live = append(live, p)
		}
	}
	return live
}

// Resolver returns the wall resolver.
func (w *World) Resolver() *collision.Resolver { return w.resolver }

// Controller returns the movement controller.
func (w *World) Controller() Controller { return w.controller }

// Settings returns the world settings.
func (w *World) Settings() Settings { return w.settings }

// Collected returns the number of pickups collected so far.
func (w *World) Collected() int { return w.collected }

// Lives returns the remaining lives.
func (w *World) Lives() int { return w.lives }

// GameOver reports whether the hazard policy ended the game.
func (w *World) GameOver() bool { return w.gameOver }

// Reset restores scoring state, sends every character to its spawn and drops
// planned paths. Pickups are not restored.
func (w *World) Reset() {
	w.collected = 0
	w.lives = w.settings.Lives
	w.gameOver = false
	for _, c := range w.entities.All() {
		c.Respawn()
	}
	for _, b := range w.behaviors {
		if r, ok := b.(interface{ Reset() }); ok {
			r.Reset()
		}
	}
}
