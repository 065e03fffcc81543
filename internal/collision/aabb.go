// Package collision builds axis-aligned bounding volumes from triangle data and
// answers horizontal collision queries against them.
package collision

import (
	"github.com/Faultbox/neonmaze/pkg/math"
)

// floatsPerTriangle is the stride of a flat position buffer.
const floatsPerTriangle = 9

// AABB is an axis-aligned bounding box. Center is cached at construction.
type AABB struct {
	Min    math.Vec3
	Max    math.Vec3
	Center math.Vec3
}

// NewAABB creates a box from its corners and caches the center.
func NewAABB(minPos, maxPos math.Vec3) AABB {
	return AABB{
		Min:    minPos,
		Max:    maxPos,
		Center: minPos.Add(maxPos).Scale(0.5),
	}
}

// Size returns the box extents.
func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Contains reports whether p lies inside the box (inclusive).
func (b AABB) Contains(p math.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// OverlapsXZ reports whether two boxes overlap in the horizontal plane.
// Touching edges count as overlap. Y is ignored.
func (b AABB) OverlapsXZ(o AABB) bool {
	return b.Max.X >= o.Min.X && b.Min.X <= o.Max.X &&
		b.Max.Z >= o.Min.Z && b.Min.Z <= o.Max.Z
}

// ClosestPointXZ clamps p onto the box in X/Z. Y is passed through.
func (b AABB) ClosestPointXZ(p math.Vec3) math.Vec3 {
	return math.Vec3{
		X: math.Clamp(p.X, b.Min.X, b.Max.X),
		Y: p.Y,
		Z: math.Clamp(p.Z, b.Min.Z, b.Max.Z),
	}
}

// Translate returns the box moved by v.
func (b AABB) Translate(v math.Vec3) AABB {
	return NewAABB(b.Min.Add(v), b.Max.Add(v))
}

// RotatedXZ returns the bounds of the box after rotating its four horizontal
// corners about the Y axis by facing. Y extents are unchanged.
func (b AABB) RotatedXZ(facing float32) AABB {
	corners := [4]math.Vec3{
		{X: b.Min.X, Z: b.Min.Z},
		{X: b.Max.X, Z: b.Min.Z},
		{X: b.Max.X, Z: b.Max.Z},
		{X: b.Min.X, Z: b.Max.Z},
	}

	r := corners[0].RotateY(facing)
	minPos, maxPos := r, r
	for _, c := range corners[1:] {
		r = c.RotateY(facing)
		minPos = minPos.Min(r)
		maxPos = maxPos.Max(r)
	}
	minPos.Y, maxPos.Y = b.Min.Y, b.Max.Y
	return NewAABB(minPos, maxPos)
}

// Triangle is one face of a flat position buffer.
type Triangle struct {
	V0, V1, V2 math.Vec3
}

// TriangleAt returns the i-th triangle of a flat position buffer.
// The caller guarantees (i+1)*9 <= len(positions).
func TriangleAt(positions []float32, i int) Triangle {
	p := positions[i*floatsPerTriangle : (i+1)*floatsPerTriangle]
	return Triangle{
		V0: math.Vec3{X: p[0], Y: p[1], Z: p[2]},
		V1: math.Vec3{X: p[3], Y: p[4], Z: p[5]},
		V2: math.Vec3{X: p[6], Y: p[7], Z: p[8]},
	}
}

// Bounds returns the triangle's AABB.
func (t Triangle) Bounds() AABB {
	return NewAABB(t.V0.Min(t.V1).Min(t.V2), t.V0.Max(t.V1).Max(t.V2))
}

// BuildAABBs returns one box per complete triangle in positions. The vertical
// offset is added to every vertex Y before bounds are taken. Trailing floats
// that do not form a full triangle are ignored.
func BuildAABBs(positions []float32, verticalOffset float32) []AABB {
	count := len(positions) / floatsPerTriangle
	boxes := make([]AABB, 0, count)
	offset := math.Vec3{Y: verticalOffset}
	for i := 0; i < count; i++ {
		tri := TriangleAt(positions, i)
		boxes = append(boxes, tri.Bounds().Translate(offset))
	}
	return boxes
}

// BuildLocalAABBs returns one box per triangle after uniformly scaling every
// vertex. Used once at load time for a character's own colliders.
func BuildLocalAABBs(positions []float32, scale float32) []AABB {
	count := len(positions) / floatsPerTriangle
	boxes := make([]AABB, 0, count)
	for i := 0; i < count; i++ {
		tri := TriangleAt(positions, i)
		tri.V0 = tri.V0.Scale(scale)
		tri.V1 = tri.V1.Scale(scale)
		tri.V2 = tri.V2.Scale(scale)
		boxes = append(boxes, tri.Bounds())
	}
	return boxes
}

// Union returns the bounds enclosing every box. ok is false for an empty list.
func Union(boxes []AABB) (box AABB, ok bool) {
	if len(boxes) == 0 {
		return AABB{}, false
	}
	minPos, maxPos := boxes[0].Min, boxes[0].Max
	for _, b := range boxes[1:] {
		minPos = minPos.Min(b.Min)
		maxPos = maxPos.Max(b.Max)
	}
	return NewAABB(minPos, maxPos), true
}
