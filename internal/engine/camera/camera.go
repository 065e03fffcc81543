// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/Faultbox/neonmaze/pkg/math"
)

// FollowCamera sits behind and above a target, looking along its heading.
type FollowCamera struct {
	Distance   float32 // horizontal distance behind the target
	Height     float32 // eye height above the target
	LookHeight float32 // look-at point above the target

	FOV    float32 // vertical field of view, degrees
	Near   float32
	Far    float32
	Aspect float32

	// Cached eye position for external access
	Eye math.Vec3
}

// NewFollowCamera creates a follow camera with the default framing.
func NewFollowCamera() *FollowCamera {
	return &FollowCamera{
		Distance:   10,
		Height:     4,
		LookHeight: 1,
		FOV:        60,
		Near:       0.1,
		Far:        80,
		Aspect:     16.0 / 9.0,
	}
}

// SetViewport updates the aspect ratio. Degenerate sizes are ignored.
func (c *FollowCamera) SetViewport(width, height int) {
	if width > 0 && height > 0 {
		c.Aspect = float32(width) / float32(height)
	}
}

// Position returns the eye position for a target facing the given angle.
func (c *FollowCamera) Position(target math.Vec3, facing float32) math.Vec3 {
	h := math.Heading(facing)
	c.Eye = math.Vec3{
		X: target.X - h.X*c.Distance,
		Y: target.Y + c.Height,
		Z: target.Z - h.Y*c.Distance,
	}
	return c.Eye
}

// ViewMatrix returns the view matrix looking at the target.
func (c *FollowCamera) ViewMatrix(target math.Vec3, facing float32) math.Mat4 {
	eye := c.Position(target, facing)
	center := math.Vec3{X: target.X, Y: target.Y + c.LookHeight, Z: target.Z}
	return math.LookAt(eye, center, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the perspective projection.
func (c *FollowCamera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(math.Radians(c.FOV), c.Aspect, c.Near, c.Far)
}
