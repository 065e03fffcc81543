package entity

import "github.com/Faultbox/neonmaze/pkg/math"

// Pickup is a collectible placed in the maze.
type Pickup struct {
	ID       uint32
	Position math.Vec3
	Radius   float32

	// Collected pickups are hidden until ReappearAt (ms), when set.
	Collected   bool
	CollectedAt float64
	ReappearAt  float64
}

// NewPickup creates a live pickup.
func NewPickup(id uint32, pos math.Vec3, radius float32) *Pickup {
	return &Pickup{ID: id, Position: pos, Radius: radius}
}

// Live reports whether the pickup can be collected and should be drawn.
func (p *Pickup) Live() bool {
	return !p.Collected
}

// Collect hides the pickup at time now (ms).
func (p *Pickup) Collect(now float64) {
	p.Collected = true
	p.CollectedAt = now
}

// Restore makes the pickup live again at pos.
func (p *Pickup) Restore(pos math.Vec3) {
	p.Position = pos
	p.Collected = false
	p.CollectedAt = 0
	p.ReappearAt = 0
}

// Spin returns the render yaw at time t (seconds).
func (p *Pickup) Spin(t float32) float32 {
	return math.NormalizeAngle(t * 1.5)
}
