// Package debug provides debug visualization utilities.
package debug

import "github.com/Faultbox/neonmaze/internal/collision"

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// GenerateBBoxWireframeVertices creates line vertices for a wireframe bounding box.
// Returns 24 vertices (12 edges × 2 endpoints), format: [x, y, z] per vertex.
func GenerateBBoxWireframeVertices(minX, minY, minZ, maxX, maxY, maxZ float32) []float32 {
	return []float32{
		// Bottom face
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

// AABBWireframe returns the wireframe of a single box, grown by padding on every side.
func AABBWireframe(box collision.AABB, padding float32) []float32 {
	return GenerateBBoxWireframeVertices(
		box.Min.X-padding, box.Min.Y-padding, box.Min.Z-padding,
		box.Max.X+padding, box.Max.Y+padding, box.Max.Z+padding,
	)
}

// BoxesWireframe concatenates the wireframes of every box except skip.
// Pass skip < 0 to include all boxes.
func BoxesWireframe(boxes []collision.AABB, skip int) []float32 {
	n := len(boxes)
	if skip >= 0 && skip < len(boxes) {
		n--
	}
	out := make([]float32, 0, n*BBoxWireframeVertexCount*3)
	for i, b := range boxes {
		if i == skip {
			continue
		}
		out = append(out, AABBWireframe(b, 0)...)
	}
	return out
}
