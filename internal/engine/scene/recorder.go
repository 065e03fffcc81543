package scene

import (
	"fmt"

	"github.com/Faultbox/neonmaze/pkg/formats"
	"github.com/Faultbox/neonmaze/pkg/math"
)

// DrawCall is one recorded mesh draw.
type DrawCall struct {
	Handle   Handle
	Name     string
	World    math.Mat4
	Material Material
	Mode     Mode
}

// LineCall is one recorded line batch.
type LineCall struct {
	Vertices []float32
	Color    [3]float32
}

// Recorder is a Backend that records calls instead of drawing.
type Recorder struct {
	// FailUpload makes Upload fail for the named meshes.
	FailUpload map[string]error

	Uploads  map[string]Handle
	names    []string
	Frames   int
	Frame    Frame
	Draws    []DrawCall
	Lines    []LineCall
	Released bool
	inFrame  bool
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{Uploads: make(map[string]Handle)}
}

func (r *Recorder) Upload(name string, data formats.VertexData) (Handle, error) {
	if err := r.FailUpload[name]; err != nil {
		return 0, err
	}
	if data.Empty() {
		return 0, fmt.Errorf("mesh %s has no triangles", name)
	}
	r.names = append(r.names, name)
	h := Handle(len(r.names))
	r.Uploads[name] = h
	return h, nil
}

func (r *Recorder) BeginFrame(f Frame) {
	r.Frame = f
	r.Draws = r.Draws[:0]
	r.Lines = r.Lines[:0]
	r.inFrame = true
}

func (r *Recorder) Draw(h Handle, world math.Mat4, mat Material, mode Mode) {
	name := ""
	if h > 0 && int(h) <= len(r.names) {
		name = r.names[h-1]
	}
	r.Draws = append(r.Draws, DrawCall{Handle: h, Name: name, World: world, Material: mat, Mode: mode})
}

func (r *Recorder) DrawLines(vertices []float32, color [3]float32) {
	r.Lines = append(r.Lines, LineCall{Vertices: append([]float32(nil), vertices...), Color: color})
}

func (r *Recorder) EndFrame() {
	if r.inFrame {
		r.Frames++
	}
	r.inFrame = false
}

func (r *Recorder) Release() {
	r.Released = true
}

// DrawsOf returns the recorded draws of the named mesh.
func (r *Recorder) DrawsOf(name string) []DrawCall {
	var out []DrawCall
	for _, d := range r.Draws {
		if d.Name == name {
			out = append(out, d)
		}
	}
	return out
}

var _ Backend = (*Recorder)(nil)
