package world

import (
	"go.uber.org/zap"

	"github.com/Faultbox/neonmaze/internal/engine/input"
	"github.com/Faultbox/neonmaze/internal/game/entity"
)

// DefaultMaxStep is the largest simulated step in seconds.
const DefaultMaxStep = 0.05

// Clock turns wall-clock milliseconds into clamped simulation steps.
type Clock struct {
	MaxStep float32 // seconds; <= 0 means DefaultMaxStep

	prev    float64
	started bool
}

// Step returns the seconds since the previous call, clamped to MaxStep.
// The first call only primes the clock and returns 0. Time going backwards
// yields 0.
func (c *Clock) Step(nowMs float64) float32 {
	maxStep := c.MaxStep
	if maxStep <= 0 {
		maxStep = DefaultMaxStep
	}
	if !c.started {
		c.started = true
		c.prev = nowMs
		return 0
	}

	dt := float32((nowMs - c.prev) / 1000)
	c.prev = nowMs
	if dt < 0 {
		return 0
	}
	return min(dt, maxStep)
}

// Reset makes the next Step prime the clock again.
func (c *Clock) Reset() {
	c.started = false
	c.prev = 0
}

// Report summarizes one update.
type Report struct {
	Dt        float32
	Collected int // pickups collected this tick
	Hits      int // hazard contacts this tick (0 or 1)
	Events    []Event
}

// Update advances the world by dt seconds. now is wall-clock milliseconds,
// used for pickup timers. Nothing happens once the game is over.
func (w *World) Update(dt float32, in input.Intent, now float64) Report {
	report := Report{Dt: dt}
	if w.gameOver || dt <= 0 {
		return report
	}

	player := w.Player()
	if player != nil {
		if dir, ok := w.scheme.Direction(player, in, dt); ok {
			w.controller.Move(player, dir, player.Speed, dt)
		} else {
			player.IsMoving = false
		}
	}

	w.moveEnemies(player, dt)

	if player == nil {
		return report
	}

	w.collectPickups(player, now, &report)
	w.pickupPolicy.Update(w, now)
	w.checkHazards(player, &report)
	return report
}

func (w *World) moveEnemies(player *entity.Character, dt float32) {
	for _, e := range w.Enemies() {
		b := w.behaviors[e.ID]
		if b == nil || e.Speed <= 0 {
			continue
		}
		dir, ok := b.Steer(e, player, dt)
		if !ok {
			e.IsMoving = false
			continue
		}
		e.SetFacing(dir.Angle())
		if e.IgnoreWalls {
			w.controller.MoveFree(e, dir, e.Speed, dt)
		} else {
			w.controller.Move(e, dir, e.Speed, dt)
		}
	}
}

// collectPickups checks every live pickup exactly once.
func (w *World) collectPickups(player *entity.Character, now float64, report *Report) {
	reach := player.Radius + w.settings.PickupRadius + w.settings.PickupMargin
	for _, p := range w.pickups {
		if !p.Live() {
			continue
		}
		if player.Position.HorizontalDistance(p.Position) >= reach {
			continue
		}
		w.pickupPolicy.Collect(w, p, now)
		w.collected++
		report.Collected++
		report.Events = append(report.Events, Event{Kind: EventPickup, Position: p.Position})
	}
}

// checkHazards applies the hazard policy for the first touching enemy only.
func (w *World) checkHazards(player *entity.Character, report *Report) {
	for _, e := range w.Enemies() {
		if !e.Hazard {
			continue
		}
		reach := player.Radius + e.Radius + w.settings.HazardMargin
		if player.HorizontalDistance(e) >= reach {
			continue
		}

		w.log.Debug("hazard contact",
			zap.String("hazard", e.Name),
			zap.Float32("x", player.Position.X),
			zap.Float32("z", player.Position.Z))
		report.Events = append(report.Events, Event{Kind: EventHazard, Name: e.Name, Position: player.Position})
		report.Hits++

		wasOver := w.gameOver
		w.hazardPolicy.OnContact(w, e)
		if w.gameOver && !wasOver {
			w.log.Info("game over", zap.Int("collected", w.collected))
			report.Events = append(report.Events, Event{Kind: EventGameOver})
		}
		return
	}
}
