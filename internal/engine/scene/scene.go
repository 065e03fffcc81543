// Package scene composes maze frames from meshes, materials, and lights.
// All GPU work goes through a Backend so the composition can run headless.
package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/neonmaze/internal/collision"
	"github.com/Faultbox/neonmaze/internal/engine/debug"
	"github.com/Faultbox/neonmaze/pkg/formats"
	"github.com/Faultbox/neonmaze/pkg/math"
)

// Overlay colours for the bounding box wireframes.
var (
	BoxColor       = [3]float32{0, 1, 1}
	HighlightColor = [3]float32{1, 0, 0}
)

// DebugConfig holds overlay toggles.
type DebugConfig struct {
	ShowBoxes bool
}

// ToggleBoxes flips the bounding box overlay and returns the new state.
func (d *DebugConfig) ToggleBoxes() bool {
	d.ShowBoxes = !d.ShowBoxes
	return d.ShowBoxes
}

// Object is one mesh instance to draw this frame.
type Object struct {
	Mesh     string
	World    math.Mat4
	Material Material
	Mode     Mode
}

// Scene tracks uploaded meshes and issues per-frame draws.
type Scene struct {
	Debug DebugConfig

	backend Backend
	handles map[string]Handle
	warned  map[string]bool
	log     *zap.Logger

	drawn   int
	inFrame bool
}

// New creates a scene on top of backend.
func New(backend Backend, log *zap.Logger) *Scene {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scene{
		backend: backend,
		handles: make(map[string]Handle),
		warned:  make(map[string]bool),
		log:     log,
	}
}

// Upload sends a mesh to the backend under name. Re-uploading a name replaces it.
func (s *Scene) Upload(name string, data formats.VertexData) error {
	h, err := s.backend.Upload(name, data)
	if err != nil {
		return fmt.Errorf("uploading %s: %w", name, err)
	}
	s.handles[name] = h
	delete(s.warned, name)
	s.log.Debug("mesh uploaded",
		zap.String("name", name),
		zap.Int("triangles", data.TriangleCount()))
	return nil
}

// Has reports whether name was uploaded.
func (s *Scene) Has(name string) bool {
	_, ok := s.handles[name]
	return ok
}

// Begin starts a frame.
func (s *Scene) Begin(f Frame) {
	s.backend.BeginFrame(f)
	s.drawn = 0
	s.inFrame = true
}

// Draw issues obj. Objects whose mesh never uploaded are skipped.
func (s *Scene) Draw(obj Object) bool {
	h, ok := s.handles[obj.Mesh]
	if !ok {
		if !s.warned[obj.Mesh] {
			s.warned[obj.Mesh] = true
			s.log.Debug("skipping draw of missing mesh", zap.String("name", obj.Mesh))
		}
		return false
	}
	s.backend.Draw(h, obj.World, obj.Material, obj.Mode)
	s.drawn++
	return true
}

// DrawBoxes draws the wireframe overlay when enabled.
// The box at highlight, if any, is drawn in HighlightColor.
func (s *Scene) DrawBoxes(boxes []collision.AABB, highlight int) {
	if !s.Debug.ShowBoxes || len(boxes) == 0 {
		return
	}
	if lines := debug.BoxesWireframe(boxes, highlight); len(lines) > 0 {
		s.backend.DrawLines(lines, BoxColor)
	}
	if highlight >= 0 && highlight < len(boxes) {
		s.backend.DrawLines(debug.AABBWireframe(boxes[highlight], 0.01), HighlightColor)
	}
}

// End finishes the frame and returns the number of meshes drawn.
func (s *Scene) End() int {
	if s.inFrame {
		s.backend.EndFrame()
		s.inFrame = false
	}
	return s.drawn
}

// Release frees backend resources.
func (s *Scene) Release() {
	s.backend.Release()
	s.handles = make(map[string]Handle)
}
