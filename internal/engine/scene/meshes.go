package scene

import "github.com/Faultbox/neonmaze/pkg/formats"

// Ground returns a square quad of the given size at height y, facing up.
func Ground(size, y float32) formats.VertexData {
	h := size / 2
	positions := []float32{
		-h, y, -h, -h, y, h, h, y, h,
		-h, y, -h, h, y, h, h, y, -h,
	}
	normals := make([]float32, 0, len(positions))
	for i := 0; i < 6; i++ {
		normals = append(normals, 0, 1, 0)
	}
	return formats.VertexData{Positions: positions, Normals: normals}
}

// cubeFaces lists each face as its outward normal and four corners (counter-clockwise).
var cubeFaces = [6]struct {
	normal  [3]float32
	corners [4][3]float32
}{
	{[3]float32{0, 0, 1}, [4][3]float32{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}},
	{[3]float32{0, 0, -1}, [4][3]float32{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}},
	{[3]float32{1, 0, 0}, [4][3]float32{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}}},
	{[3]float32{-1, 0, 0}, [4][3]float32{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}},
	{[3]float32{0, 1, 0}, [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}},
	{[3]float32{0, -1, 0}, [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}},
}

// Cube returns an axis-aligned cube of half extent h centered on the origin.
func Cube(h float32) formats.VertexData {
	positions := make([]float32, 0, 6*6*3)
	normals := make([]float32, 0, 6*6*3)
	for _, f := range cubeFaces {
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			c := f.corners[i]
			positions = append(positions, c[0]*h, c[1]*h, c[2]*h)
			normals = append(normals, f.normal[0], f.normal[1], f.normal[2])
		}
	}
	return formats.VertexData{Positions: positions, Normals: normals}
}
