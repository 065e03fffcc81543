package scene

import (
	"errors"
	"testing"

	"github.com/Faultbox/neonmaze/internal/collision"
	"github.com/Faultbox/neonmaze/internal/engine/debug"
	"github.com/Faultbox/neonmaze/pkg/formats"
	"github.com/Faultbox/neonmaze/pkg/math"
)

func TestGround(t *testing.T) {
	g := Ground(20, -1.2)
	if g.TriangleCount() != 2 || !g.HasNormals() {
		t.Fatalf("expected 2 lit triangles, got %d normals=%v", g.TriangleCount(), g.HasNormals())
	}
	minPos, maxPos := g.Bounds()
	if minPos != [3]float32{-10, -1.2, -10} || maxPos != [3]float32{10, -1.2, 10} {
		t.Errorf("unexpected bounds %v %v", minPos, maxPos)
	}
}

func TestCube(t *testing.T) {
	c := Cube(0.5)
	if c.TriangleCount() != 12 || !c.HasNormals() {
		t.Fatalf("expected 12 lit triangles, got %d", c.TriangleCount())
	}
	minPos, maxPos := c.Bounds()
	if minPos != [3]float32{-0.5, -0.5, -0.5} || maxPos != [3]float32{0.5, 0.5, 0.5} {
		t.Errorf("unexpected bounds %v %v", minPos, maxPos)
	}

	// Normals point away from the center.
	for i := 0; i < len(c.Positions); i += 3 {
		d := c.Positions[i]*c.Normals[i] + c.Positions[i+1]*c.Normals[i+1] + c.Positions[i+2]*c.Normals[i+2]
		if d <= 0 {
			t.Fatalf("vertex %d normal points inward", i/3)
		}
	}
}

func TestSceneDraw(t *testing.T) {
	rec := NewRecorder()
	s := New(rec, nil)

	if err := s.Upload("cube", Cube(1)); err != nil {
		t.Fatal(err)
	}
	if !s.Has("cube") || s.Has("ghost") {
		t.Error("unexpected Has results")
	}

	s.Begin(Frame{Time: 1})
	world := math.Translate(1, 2, 3)
	if !s.Draw(Object{Mesh: "cube", World: world, Mode: ModeWireframe}) {
		t.Error("expected cube draw")
	}
	if s.Draw(Object{Mesh: "ghost"}) {
		t.Error("missing mesh must be skipped")
	}
	if n := s.End(); n != 1 {
		t.Errorf("expected 1 draw, got %d", n)
	}

	if rec.Frames != 1 || rec.Frame.Time != 1 {
		t.Errorf("unexpected frame state %d %+v", rec.Frames, rec.Frame)
	}
	draws := rec.DrawsOf("cube")
	if len(draws) != 1 || draws[0].Mode != ModeWireframe || draws[0].World != world {
		t.Errorf("unexpected draws %+v", draws)
	}

	// End without Begin is a no-op.
	s.End()
	if rec.Frames != 1 {
		t.Errorf("expected 1 frame, got %d", rec.Frames)
	}
}

func TestSceneUploadErrors(t *testing.T) {
	rec := NewRecorder()
	rec.FailUpload = map[string]error{"bad": errors.New("boom")}
	s := New(rec, nil)

	if err := s.Upload("bad", Cube(1)); err == nil {
		t.Error("expected upload failure")
	}
	if err := s.Upload("empty", formats.VertexData{}); err == nil {
		t.Error("expected empty mesh failure")
	}
	if s.Has("bad") || s.Has("empty") {
		t.Error("failed uploads must not register")
	}
}

func TestSceneDrawBoxes(t *testing.T) {
	rec := NewRecorder()
	s := New(rec, nil)
	boxes := []collision.AABB{
		collision.NewAABB(math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1}),
		collision.NewAABB(math.Vec3{X: 2}, math.Vec3{X: 3, Y: 1, Z: 1}),
	}

	s.Begin(Frame{})
	s.DrawBoxes(boxes, 1)
	s.End()
	if len(rec.Lines) != 0 {
		t.Fatal("overlay must be off by default")
	}

	if !s.Debug.ToggleBoxes() {
		t.Fatal("toggle should enable the overlay")
	}

	s.Begin(Frame{})
	s.DrawBoxes(boxes, 1)
	s.End()
	if len(rec.Lines) != 2 {
		t.Fatalf("expected normal and highlight batches, got %d", len(rec.Lines))
	}
	if rec.Lines[0].Color != BoxColor || len(rec.Lines[0].Vertices) != debug.BBoxWireframeVertexCount*3 {
		t.Errorf("unexpected normal batch %+v", rec.Lines[0].Color)
	}
	if rec.Lines[1].Color != HighlightColor {
		t.Errorf("expected highlight colour, got %v", rec.Lines[1].Color)
	}

	s.Begin(Frame{})
	s.DrawBoxes(boxes, -1)
	s.End()
	if len(rec.Lines) != 1 || len(rec.Lines[0].Vertices) != 2*debug.BBoxWireframeVertexCount*3 {
		t.Errorf("expected a single batch for both boxes, got %d", len(rec.Lines))
	}
}

func TestSceneRelease(t *testing.T) {
	rec := NewRecorder()
	s := New(rec, nil)
	_ = s.Upload("cube", Cube(1))
	s.Release()
	if !rec.Released || s.Has("cube") {
		t.Error("release should drop handles")
	}
}

func TestModeString(t *testing.T) {
	if ModeFilled.String() != "filled" || ModeWireframe.String() != "wireframe" {
		t.Error("unexpected mode names")
	}
}
