package collision

import (
	gomath "math"

	"github.com/Faultbox/neonmaze/pkg/math"
)

// Epsilon guards normal computation against a zero-length delta.
const Epsilon = 1e-6

// Contact is the result of a collision query.
type Contact struct {
	Hit         bool
	Normal      math.Vec3 // horizontal, unit length when Hit
	Penetration float32
	Index       int // index of the contacted wall box, -1 when no hit
}

// NoCollision is the zero-hit result.
var NoCollision = Contact{Index: -1}

// Resolver answers collision queries against an immutable list of wall boxes.
// A nil *Resolver is valid and never reports a collision.
type Resolver struct {
	boxes []AABB
}

// NewResolver creates a resolver over a copy of boxes.
func NewResolver(boxes []AABB) *Resolver {
	owned := make([]AABB, len(boxes))
	copy(owned, boxes)
	return &Resolver{boxes: owned}
}

// Len returns the number of wall boxes.
func (r *Resolver) Len() int {
	if r == nil {
		return 0
	}
	return len(r.boxes)
}

// Boxes returns the wall boxes. Callers must not modify the slice.
func (r *Resolver) Boxes() []AABB {
	if r == nil {
		return nil
	}
	return r.boxes
}

// Bounds returns the union of all wall boxes.
func (r *Resolver) Bounds() (AABB, bool) {
	return Union(r.Boxes())
}

// QueryPoint tests a horizontal circle of the given radius at pos.
// The first box (in index order) closer than radius wins, not the nearest.
func (r *Resolver) QueryPoint(pos math.Vec3, radius float32) Contact {
	if r == nil {
		return NoCollision
	}

	radiusSq := radius * radius
	for i, box := range r.boxes {
		closest := box.ClosestPointXZ(pos)
		dx := pos.X - closest.X
		dz := pos.Z - closest.Z
		distSq := dx*dx + dz*dz
		if distSq >= radiusSq {
			continue
		}

		dist := float32(gomath.Sqrt(float64(distSq)))
		return Contact{
			Hit:         true,
			Normal:      horizontalNormal(math.Vec3{X: dx, Z: dz}, dist, pos.Sub(box.Center)),
			Penetration: radius - dist,
			Index:       i,
		}
	}
	return NoCollision
}

// QueryOrientedBoxSet tests a set of character-local boxes rotated by facing
// and placed at pos. Walls are the outer loop, local boxes the inner one.
// Penetration is the smaller of the X and Z overlap extents.
func (r *Resolver) QueryOrientedBoxSet(pos math.Vec3, facing float32, local []AABB) Contact {
	if r == nil || len(local) == 0 {
		return NoCollision
	}

	placed := make([]AABB, len(local))
	for i, lb := range local {
		placed[i] = lb.RotatedXZ(facing).Translate(pos)
	}

	for i, wall := range r.boxes {
		for _, box := range placed {
			if !box.OverlapsXZ(wall) {
				continue
			}

			delta := box.Center.Sub(wall.Center)
			delta.Y = 0
			overlapX := min(box.Max.X, wall.Max.X) - max(box.Min.X, wall.Min.X)
			overlapZ := min(box.Max.Z, wall.Max.Z) - max(box.Min.Z, wall.Min.Z)
			return Contact{
				Hit:         true,
				Normal:      horizontalNormal(delta, delta.Length(), pos.Sub(wall.Center)),
				Penetration: min(overlapX, overlapZ),
				Index:       i,
			}
		}
	}
	return NoCollision
}

// Query dispatches to the shape's own test. A nil shape never collides.
func (r *Resolver) Query(shape Shape, pos math.Vec3, facing float32) Contact {
	if r == nil || shape == nil {
		return NoCollision
	}
	return shape.Query(r, pos, facing)
}

// horizontalNormal returns delta/dist with Y dropped. When delta is zero it
// falls back to the fallback direction, then to +Z, so the result is finite.
func horizontalNormal(delta math.Vec3, dist float32, fallback math.Vec3) math.Vec3 {
	delta.Y = 0
	if delta.X != 0 || delta.Z != 0 {
		d := max(dist, Epsilon)
		return math.Vec3{X: delta.X / d, Z: delta.Z / d}.Normalize()
	}

	fallback.Y = 0
	if fallback.X != 0 || fallback.Z != 0 {
		return fallback.Normalize()
	}
	return math.Vec3{Z: 1}
}
