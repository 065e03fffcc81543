package collision

import "github.com/Faultbox/neonmaze/pkg/math"

// Shape is a collider that can test itself against a resolver's walls.
type Shape interface {
	Query(r *Resolver, pos math.Vec3, facing float32) Contact
}

// Circle is a horizontal bounding circle. Facing is irrelevant.
type Circle struct {
	Radius float32
}

// Query implements Shape.
func (c Circle) Query(r *Resolver, pos math.Vec3, _ float32) Contact {
	return r.QueryPoint(pos, c.Radius)
}

// BoxSet is a set of character-local boxes that rotate with the facing angle.
type BoxSet struct {
	Boxes []AABB
}

// NewBoxSet builds a box set from a character mesh scaled at load time.
func NewBoxSet(positions []float32, scale float32) BoxSet {
	return BoxSet{Boxes: BuildLocalAABBs(positions, scale)}
}

// Query implements Shape.
func (s BoxSet) Query(r *Resolver, pos math.Vec3, facing float32) Contact {
	return r.QueryOrientedBoxSet(pos, facing, s.Boxes)
}
