package renderer

import "github.com/Faultbox/neonmaze/pkg/formats"

// vertexStride is the number of floats per interleaved vertex (position + normal).
const vertexStride = 6

// interleave packs complete triangles as [px py pz nx ny nz] per vertex.
// Meshes without a normal per vertex get flat face normals.
func interleave(data formats.VertexData) []float32 {
	tris := data.TriangleCount()
	out := make([]float32, 0, tris*3*vertexStride)
	hasNormals := data.HasNormals()

	for t := 0; t < tris; t++ {
		base := t * 9
		var face [3]float32
		if !hasNormals {
			face = faceNormal(data.Positions[base : base+9])
		}
		for v := 0; v < 3; v++ {
			i := base + v*3
			out = append(out, data.Positions[i], data.Positions[i+1], data.Positions[i+2])
			if hasNormals {
				out = append(out, data.Normals[i], data.Normals[i+1], data.Normals[i+2])
			} else {
				out = append(out, face[0], face[1], face[2])
			}
		}
	}
	return out
}

// faceNormal returns the unit normal of a counter-clockwise triangle, +Y when degenerate.
func faceNormal(p []float32) [3]float32 {
	ax, ay, az := p[3]-p[0], p[4]-p[1], p[5]-p[2]
	bx, by, bz := p[6]-p[0], p[7]-p[1], p[8]-p[2]
	n := [3]float32{ay*bz - az*by, az*bx - ax*bz, ax*by - ay*bx}
	l := sqrt32(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	if l < 1e-12 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{n[0] / l, n[1] / l, n[2] / l}
}
