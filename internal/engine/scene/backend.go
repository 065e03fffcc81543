package scene

import (
	"github.com/Faultbox/neonmaze/pkg/formats"
	"github.com/Faultbox/neonmaze/pkg/math"
)

// Handle identifies an uploaded mesh inside a Backend.
type Handle uint32

// Mode selects how a mesh is rasterized.
type Mode uint8

const (
	ModeFilled Mode = iota
	ModeWireframe
)

func (m Mode) String() string {
	if m == ModeWireframe {
		return "wireframe"
	}
	return "filled"
}

// Material holds per-draw surface parameters.
type Material struct {
	Diffuse          [4]float32
	Specular         [3]float32
	Shininess        float32
	Emission         [3]float32
	EmissionStrength float32
}

// Lighting holds the directional light and fog shared by a frame.
type Lighting struct {
	Direction math.Vec3 // points toward the light
	Ambient   [3]float32
	FogNear   float32
	FogFar    float32
	FogColor  [3]float32
}

// Frame carries the per-frame camera and lighting state.
type Frame struct {
	View       math.Mat4
	Projection math.Mat4
	Eye        math.Vec3
	Lighting   Lighting
	Clear      [3]float32
	Time       float32
}

// Backend is the GPU side of the scene. Implementations own all GL state.
type Backend interface {
	Upload(name string, data formats.VertexData) (Handle, error)
	BeginFrame(f Frame)
	Draw(h Handle, world math.Mat4, mat Material, mode Mode)
	DrawLines(vertices []float32, color [3]float32)
	EndFrame()
	Release()
}
