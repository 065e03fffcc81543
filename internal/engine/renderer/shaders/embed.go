// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// LitVertexShader transforms lit meshes and passes world-space data to the fragment stage.
//
//go:embed lit.vert
var LitVertexShader string

// LitFragmentShader shades meshes with a directional light, emission, and linear fog.
//
//go:embed lit.frag
var LitFragmentShader string

// LineVertexShader is the vertex shader for debug lines.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader is the fragment shader for debug lines.
//
//go:embed line.frag
var LineFragmentShader string
