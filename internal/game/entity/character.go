// Package entity provides game entities like the player, enemies, and pickups.
package entity

import (
	gomath "math"

	"github.com/Faultbox/neonmaze/internal/collision"
	"github.com/Faultbox/neonmaze/pkg/math"
)

// Character is a movable entity with a position, facing angle, and collider.
type Character struct {
	ID   uint32
	Type Type
	Name string
	Mesh string // asset name of the render/collider mesh

	// Position in world coordinates; Y is vertical
	Position math.Vec3
	Spawn    math.Vec3
	Facing   float32 // radians in (-Pi, Pi]

	// Movement parameters
	Speed     float32 // units per second
	TurnSpeed float32 // radians per second (tank scheme)
	IsMoving  bool

	// Collision
	Radius      float32
	Shape       collision.Shape // nil means Circle{Radius}
	IgnoreWalls bool
	Hazard      bool

	// Visual
	Scale            float32
	Color            [4]float32
	EmissionColor    [3]float32
	EmissionStrength float32
	PulseSpeed       float32
	BobAmplitude     float32
	BobSpeed         float32
}

// NewCharacter creates a character at pos with default movement parameters.
func NewCharacter(id uint32, t Type, name string, pos math.Vec3) *Character {
	return &Character{
		ID:        id,
		Type:      t,
		Name:      name,
		Position:  pos,
		Spawn:     pos,
		Speed:     4.0,
		TurnSpeed: gomath.Pi,
		Radius:    0.4,
		Scale:     0.8,
		Color:     [4]float32{1, 1, 1, 1},
	}
}

// SetPosition sets the character's world position.
func (c *Character) SetPosition(pos math.Vec3) {
	c.Position = pos
}

// SetFacing sets the facing angle, wrapped into (-Pi, Pi].
func (c *Character) SetFacing(angle float32) {
	c.Facing = math.NormalizeAngle(angle)
}

// Turn adds delta to the facing angle.
func (c *Character) Turn(delta float32) {
	c.SetFacing(c.Facing + delta)
}

// Heading returns the unit horizontal direction the character faces.
func (c *Character) Heading() math.Vec2 {
	return math.Heading(c.Facing)
}

// Respawn moves the character back to its spawn point and clears motion.
func (c *Character) Respawn() {
	c.Position = c.Spawn
	c.IsMoving = false
}

// Collider returns the shape used for wall queries.
func (c *Character) Collider() collision.Shape {
	if c.Shape != nil {
		return c.Shape
	}
	return collision.Circle{Radius: c.Radius}
}

// HorizontalDistance returns the X/Z distance to another character.
func (c *Character) HorizontalDistance(other *Character) float32 {
	return c.Position.HorizontalDistance(other.Position)
}

// BobOffset returns the vertical render offset at time t (seconds).
func (c *Character) BobOffset(t float32) float32 {
	if c.BobAmplitude == 0 {
		return 0
	}
	return c.BobAmplitude * sinf32(t*c.BobSpeed)
}

// PulseFactor returns the emission multiplier at time t (seconds).
func (c *Character) PulseFactor(t float32) float32 {
	return 0.1*sinf32(t*c.PulseSpeed) + 1
}

// EmissionAt returns the pulsed emission strength at time t (seconds).
func (c *Character) EmissionAt(t float32) float32 {
	return c.EmissionStrength * c.PulseFactor(t)
}

// sinf32 computes the sine of a float32.
func sinf32(x float32) float32 {
	return float32(gomath.Sin(float64(x)))
}
