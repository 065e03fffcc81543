// Package renderer provides the OpenGL backend for the scene.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/neonmaze/internal/engine/renderer/shaders"
	"github.com/Faultbox/neonmaze/internal/engine/scene"
	"github.com/Faultbox/neonmaze/internal/engine/shader"
	"github.com/Faultbox/neonmaze/internal/logger"
	"github.com/Faultbox/neonmaze/pkg/formats"
	"github.com/Faultbox/neonmaze/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

type gpuMesh struct {
	name  string
	vao   uint32
	vbo   uint32
	count int32
}

// Renderer draws scene frames with OpenGL 4.1.
type Renderer struct {
	config Config

	lit  *shader.Program
	line *shader.Program

	meshes []gpuMesh // index = handle - 1

	lineVAO uint32
	lineVBO uint32

	frame scene.Frame
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	if r.lit, err = shader.New(shaders.LitVertexShader, shaders.LitFragmentShader); err != nil {
		return nil, fmt.Errorf("lit shader: %w", err)
	}
	if r.line, err = shader.New(shaders.LineVertexShader, shaders.LineFragmentShader); err != nil {
		r.lit.Delete()
		return nil, fmt.Errorf("line shader: %w", err)
	}

	gl.GenVertexArrays(1, &r.lineVAO)
	gl.GenBuffers(1, &r.lineVBO)
	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	return r, nil
}

// Upload creates GPU buffers for a mesh.
func (r *Renderer) Upload(name string, data formats.VertexData) (scene.Handle, error) {
	vertices := interleave(data)
	if len(vertices) == 0 {
		return 0, fmt.Errorf("mesh %s has no triangles", name)
	}

	m := gpuMesh{name: name, count: int32(len(vertices) / vertexStride)}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride*4, nil)
	gl.EnableVertexAttribArray(0)
	// Normal attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, vertexStride*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.meshes = append(r.meshes, m)
	logger.Debug("mesh uploaded",
		zap.String("name", name),
		zap.Int32("vertices", m.count),
		zap.Uint32("vao", m.vao),
	)
	return scene.Handle(len(r.meshes)), nil
}

// BeginFrame clears the screen and sets the per-frame uniforms.
func (r *Renderer) BeginFrame(f scene.Frame) {
	r.frame = f
	gl.ClearColor(f.Clear[0], f.Clear[1], f.Clear[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.lit.Use()
	r.lit.SetMat4("uView", f.View)
	r.lit.SetMat4("uProjection", f.Projection)
	r.lit.SetVec3("uEye", f.Eye.Array())
	r.lit.SetVec3("uLightDir", f.Lighting.Direction.Array())
	r.lit.SetVec3("uAmbient", f.Lighting.Ambient)
	r.lit.SetFloat("uFogNear", f.Lighting.FogNear)
	r.lit.SetFloat("uFogFar", f.Lighting.FogFar)
	r.lit.SetVec3("uFogColor", f.Lighting.FogColor)
}

// Draw renders one mesh instance.
func (r *Renderer) Draw(h scene.Handle, world math.Mat4, mat scene.Material, mode scene.Mode) {
	if h == 0 || int(h) > len(r.meshes) {
		return
	}
	m := r.meshes[h-1]

	r.lit.Use()
	r.lit.SetMat4("uModel", world)
	r.lit.SetVec4("uDiffuse", mat.Diffuse)
	r.lit.SetVec3("uSpecular", mat.Specular)
	r.lit.SetFloat("uShininess", mat.Shininess)
	r.lit.SetVec3("uEmission", mat.Emission)
	r.lit.SetFloat("uEmissionStrength", mat.EmissionStrength)

	if mode == scene.ModeWireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
	if mode == scene.ModeWireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// DrawLines renders unlit line segments in world space.
func (r *Renderer) DrawLines(vertices []float32, color [3]float32) {
	if len(vertices) < 6 {
		return
	}
	r.line.Use()
	r.line.SetMat4("uView", r.frame.View)
	r.line.SetMat4("uProjection", r.frame.Projection)
	r.line.SetVec3("uColor", color)

	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(vertices)/3))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// EndFrame finishes the current frame.
func (r *Renderer) EndFrame() {
	gl.UseProgram(0)
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// ReadPixels returns the back buffer as bottom-up RGBA.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// Release frees all GPU resources.
func (r *Renderer) Release() {
	logger.Info("closing renderer")
	for i := range r.meshes {
		gl.DeleteVertexArrays(1, &r.meshes[i].vao)
		gl.DeleteBuffers(1, &r.meshes[i].vbo)
	}
	r.meshes = nil
	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
		gl.DeleteBuffers(1, &r.lineVBO)
	}
	r.lit.Delete()
	r.line.Delete()
}

var _ scene.Backend = (*Renderer)(nil)
