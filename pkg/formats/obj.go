// Package formats provides parsers for the mesh formats the game loads.
// OBJ (Wavefront) text format parser producing flat, triangle-aligned buffers.
package formats

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"
)

// maxOBJLine bounds a single record when streaming from a reader.
const maxOBJLine = 1 << 20

// VertexData is a flat, render-ready vertex attribute set.
// Every 3 floats form one attribute; every 9 position floats form one triangle.
type VertexData struct {
	Positions []float32
	Normals   []float32
}

// VertexCount returns the number of emitted vertices.
func (d VertexData) VertexCount() int {
	return len(d.Positions) / 3
}

// TriangleCount returns the number of complete triangles.
func (d VertexData) TriangleCount() int {
	return len(d.Positions) / 9
}

// Empty reports whether the buffer holds no complete triangle.
func (d VertexData) Empty() bool {
	return d.TriangleCount() == 0
}

// HasNormals reports whether every emitted vertex carries a normal.
func (d VertexData) HasNormals() bool {
	return len(d.Normals) > 0 && len(d.Normals) == len(d.Positions)
}

// Bounds returns the component-wise min and max over all positions.
// Both are zero for an empty buffer.
func (d VertexData) Bounds() (minPos, maxPos [3]float32) {
	if len(d.Positions) < 3 {
		return minPos, maxPos
	}
	copy(minPos[:], d.Positions[:3])
	copy(maxPos[:], d.Positions[:3])
	for i := 3; i+2 < len(d.Positions); i += 3 {
		for axis := 0; axis < 3; axis++ {
			v := d.Positions[i+axis]
			minPos[axis] = min(minPos[axis], v)
			maxPos[axis] = max(maxPos[axis], v)
		}
	}
	return minPos, maxPos
}

// OBJStats counts the records seen while parsing.
type OBJStats struct {
	Positions int // v records
	Normals   int // vn records
	Texcoords int // vt records
	Faces     int // f records
	Triangles int // triangles emitted after fan triangulation
	Skipped   int // records with an unrecognized keyword
}

// OBJ is a parsed Wavefront OBJ mesh.
type OBJ struct {
	VertexData

	// Texcoords are parsed for completeness; nothing downstream consumes them.
	Texcoords []float32

	Stats OBJStats
}

// objParser accumulates attribute lists. Index 0 of each list is a zero
// sentinel so absent or malformed references resolve to the origin.
type objParser struct {
	positions [][3]float32
	texcoords [][2]float32
	normals   [][3]float32
	out       *OBJ
}

func newOBJParser() *objParser {
	return &objParser{
		positions: [][3]float32{{}},
		texcoords: [][2]float32{{}},
		normals:   [][3]float32{{}},
		out:       &OBJ{},
	}
}

// ParseOBJ parses OBJ text. It never fails: unknown records are skipped and
// bad references degrade to the origin. Callers check Empty before use.
func ParseOBJ(data []byte) *OBJ {
	p := newOBJParser()
	for len(data) > 0 {
		var line []byte
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			line, data = data, nil
		}
		p.parseLine(string(line))
	}
	return p.out
}

// ReadOBJ parses OBJ text from a reader. Only I/O errors are returned.
func ReadOBJ(r io.Reader) (*OBJ, error) {
	p := newOBJParser()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxOBJLine)
	for scanner.Scan() {
		p.parseLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return p.out, nil
}

func (p *objParser) parseLine(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return
	}

	keyword, parts := fields[0], fields[1:]
	switch keyword {
	case "v":
		p.positions = append(p.positions, parseVec3(parts))
		p.out.Stats.Positions++
	case "vn":
		p.normals = append(p.normals, parseVec3(parts))
		p.out.Stats.Normals++
	case "vt":
		var uv [2]float32
		for i := 0; i < len(parts) && i < 2; i++ {
			uv[i] = parseFloat(parts[i])
		}
		p.texcoords = append(p.texcoords, uv)
		p.out.Stats.Texcoords++
	case "f":
		p.out.Stats.Faces++
		// Fan triangulation: n references yield n-2 triangles sharing the first.
		for i := 0; i+2 < len(parts); i++ {
			p.addVertex(parts[0])
			p.addVertex(parts[i+1])
			p.addVertex(parts[i+2])
			p.out.Stats.Triangles++
		}
	default:
		p.out.Stats.Skipped++
	}
}

// addVertex emits one position/texcoord/normal reference. Empty slots
// contribute nothing for their attribute.
func (p *objParser) addVertex(ref string) {
	slots := strings.Split(ref, "/")
	for i, slot := range slots {
		if slot == "" || i > 2 {
			continue
		}
		switch i {
		case 0:
			v := p.positions[resolveIndex(slot, len(p.positions))]
			p.out.Positions = append(p.out.Positions, v[0], v[1], v[2])
		case 1:
			v := p.texcoords[resolveIndex(slot, len(p.texcoords))]
			p.out.Texcoords = append(p.out.Texcoords, v[0], v[1])
		case 2:
			v := p.normals[resolveIndex(slot, len(p.normals))]
			p.out.Normals = append(p.out.Normals, v[0], v[1], v[2])
		}
	}
}

// resolveIndex turns a 1-based or negative (relative) OBJ index into a list
// index. Unparsable or out-of-range references resolve to the sentinel 0.
func resolveIndex(s string, n int) int {
	raw, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	idx := raw
	if raw < 0 {
		idx = raw + n
	}
	if idx < 0 || idx >= n {
		return 0
	}
	return idx
}

func parseVec3(parts []string) [3]float32 {
	var v [3]float32
	for i := 0; i < len(parts) && i < 3; i++ {
		v[i] = parseFloat(parts[i])
	}
	return v
}

func parseFloat(s string) float32 {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0
	}
	return float32(f)
}
