package world

import (
	"github.com/Faultbox/neonmaze/internal/collision"
	"github.com/Faultbox/neonmaze/internal/engine/input"
	"github.com/Faultbox/neonmaze/internal/game/entity"
	"github.com/Faultbox/neonmaze/pkg/math"
)

// minDirection is the smallest input magnitude treated as movement.
const minDirection = 0.001

// Scheme turns a tick's input intent into a movement direction.
// It may update the character's facing angle.
type Scheme interface {
	Direction(c *entity.Character, in input.Intent, dt float32) (math.Vec2, bool)
}

// FreeDirection composes held directions into a normalized heading and faces it.
type FreeDirection struct{}

// Direction implements Scheme.
func (FreeDirection) Direction(c *entity.Character, in input.Intent, _ float32) (math.Vec2, bool) {
	dir := math.Vec2{X: in.MoveX, Y: in.MoveZ}
	if dir.Length() <= minDirection {
		return math.Vec2{}, false
	}
	dir = dir.Normalize()
	c.SetFacing(dir.Angle())
	return dir, true
}

// Tank rotates the facing angle with Turn and moves along it with Forward.
// Turning does not depend on forward motion.
type Tank struct{}

// Direction implements Scheme.
func (Tank) Direction(c *entity.Character, in input.Intent, dt float32) (math.Vec2, bool) {
	if in.Turn != 0 {
		c.Turn(in.Turn * c.TurnSpeed * dt)
	}
	switch {
	case in.Forward > 0:
		return c.Heading(), true
	case in.Forward < 0:
		return c.Heading().Scale(-1), true
	default:
		return math.Vec2{}, false
	}
}

// SchemeByName returns the scheme for a config name. Unknown names use FreeDirection.
func SchemeByName(name string) Scheme {
	if name == "tank" {
		return Tank{}
	}
	return FreeDirection{}
}

// MoveResult reports what a move did.
type MoveResult struct {
	Moved   bool // position changed
	Blocked bool // the combined move collided
	SlidX   bool // X-only fallback committed
	SlidZ   bool // Z-only fallback committed
}

// Controller moves characters through the maze with axis-decomposed sliding.
type Controller struct {
	Resolver   *collision.Resolver
	WorldLimit float32 // half extent of the play area; <= 0 disables the clamp
}

// Move advances c along dir at speed for dt seconds.
// A blocked combined move falls back to X-only, then Z-only from the
// resulting position. If all attempts collide the character stays put.
func (mc Controller) Move(c *entity.Character, dir math.Vec2, speed, dt float32) MoveResult {
	step := dir.Scale(speed * dt)
	if step.X == 0 && step.Y == 0 {
		c.IsMoving = false
		return MoveResult{}
	}

	shape := c.Collider()
	desired := c.Position
	desired.X += step.X
	desired.Z += step.Y

	if !mc.blocked(c, shape, desired) {
		mc.commit(c, desired)
		c.IsMoving = true
		return MoveResult{Moved: true}
	}

	result := MoveResult{Blocked: true}
	if step.X != 0 {
		tryX := c.Position
		tryX.X = desired.X
		if !mc.blocked(c, shape, tryX) {
			mc.commit(c, tryX)
			result.SlidX = true
		}
	}
	if step.Y != 0 {
		tryZ := c.Position
		tryZ.Z = desired.Z
		if !mc.blocked(c, shape, tryZ) {
			mc.commit(c, tryZ)
			result.SlidZ = true
		}
	}
	result.Moved = result.SlidX || result.SlidZ
	c.IsMoving = result.Moved
	return result
}

// MoveFree advances c without wall checks. The world clamp still applies.
func (mc Controller) MoveFree(c *entity.Character, dir math.Vec2, speed, dt float32) MoveResult {
	step := dir.Scale(speed * dt)
	if step.X == 0 && step.Y == 0 {
		c.IsMoving = false
		return MoveResult{}
	}
	mc.commit(c, math.Vec3{X: c.Position.X + step.X, Y: c.Position.Y, Z: c.Position.Z + step.Y})
	c.IsMoving = true
	return MoveResult{Moved: true}
}

// Contact returns the wall contact for c at its current position.
func (mc Controller) Contact(c *entity.Character) collision.Contact {
	return mc.Resolver.Query(c.Collider(), c.Position, c.Facing)
}

func (mc Controller) blocked(c *entity.Character, shape collision.Shape, pos math.Vec3) bool {
	return mc.Resolver.Query(shape, pos, c.Facing).Hit
}

func (mc Controller) commit(c *entity.Character, pos math.Vec3) {
	if mc.WorldLimit > 0 {
		pos.X = math.Clamp(pos.X, -mc.WorldLimit, mc.WorldLimit)
		pos.Z = math.Clamp(pos.Z, -mc.WorldLimit, mc.WorldLimit)
	}
	c.Position = pos
}
