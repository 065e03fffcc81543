package world

import (
	"go.uber.org/zap"

	"github.com/Faultbox/neonmaze/internal/game/entity"
)

// PickupPolicy decides what happens to a pickup once collected.
type PickupPolicy interface {
	// Collect is called once per collected pickup, at time now (ms).
	Collect(w *World, p *entity.Pickup, now float64)
	// Update runs once per tick after collection.
	Update(w *World, now float64)
}

// RemovePickups removes collected pickups permanently.
type RemovePickups struct{}

// Collect implements PickupPolicy.
func (RemovePickups) Collect(_ *World, p *entity.Pickup, now float64) {
	p.Collect(now)
}

// Update implements PickupPolicy.
func (RemovePickups) Update(w *World, _ float64) {
	w.prunePickups()
}

// ReappearPickups hides collected pickups and brings each back after Delay
// at a freshly sampled position.
type ReappearPickups struct {
	Delay float64 // milliseconds
}

// Collect implements PickupPolicy.
func (r ReappearPickups) Collect(_ *World, p *entity.Pickup, now float64) {
	p.Collect(now)
	p.ReappearAt = now + r.Delay
}

// Update implements PickupPolicy.
func (r ReappearPickups) Update(w *World, now float64) {
	for _, p := range w.pickups {
		if p.Live() || now < p.ReappearAt {
			continue
		}
		pos, ok := w.samplePickupPosition()
		if !ok {
			// Try again after another delay.
			p.ReappearAt = now + r.Delay
			w.log.Warn("no free position for pickup", zap.Uint32("pickup", p.ID))
			continue
		}
		p.Restore(pos)
	}
}

// PickupPolicyByName returns the policy for a config name.
func PickupPolicyByName(name string, delayMs float64) PickupPolicy {
	if name == "reappear" {
		return ReappearPickups{Delay: delayMs}
	}
	return RemovePickups{}
}

// HazardPolicy applies the penalty for touching a hazard.
type HazardPolicy interface {
	OnContact(w *World, hazard *entity.Character)
}

// Respawn sends the player back to its spawn point.
type Respawn struct{}

// OnContact implements HazardPolicy.
func (Respawn) OnContact(w *World, _ *entity.Character) {
	if p := w.Player(); p != nil {
		p.Respawn()
	}
}

// LoseLife costs one life and respawns the player. The game ends at zero.
type LoseLife struct{}

// OnContact implements HazardPolicy.
func (LoseLife) OnContact(w *World, _ *entity.Character) {
	if w.lives > 0 {
		w.lives--
	}
	if p := w.Player(); p != nil {
		p.Respawn()
	}
	if w.lives == 0 {
		w.gameOver = true
	}
}

// HazardPolicyByName returns the policy for a config name.
func HazardPolicyByName(name string) HazardPolicy {
	if name == "lose_life" {
		return LoseLife{}
	}
	return Respawn{}
}

func (w *World) prunePickups() {
	kept := w.pickups[:0]
	for _, p := range w.pickups {
		if p.Live() {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(w.pickups); i++ {
		w.pickups[i] = nil
	}
	w.pickups = kept
}
