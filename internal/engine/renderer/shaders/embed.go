// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PhongVertexShader is the vertex shader for the planet and cloud shells.
//
//go:embed phong.vert
var PhongVertexShader string

// PhongFragmentShader is the Blinn-Phong fragment shader with diffuse,
// specular and normal maps.
//
//go:embed phong.frag
var PhongFragmentShader string

// AtmosphereVertexShader passes view-space normals to the glow shader.
//
//go:embed atmosphere.vert
var AtmosphereVertexShader string

// AtmosphereFragmentShader evaluates the rim glow per pixel.
//
//go:embed atmosphere.frag
var AtmosphereFragmentShader string

// PointsVertexShader is the vertex shader for the starfield.
//
//go:embed points.vert
var PointsVertexShader string

// PointsFragmentShader is the fragment shader for the starfield.
//
//go:embed points.frag
var PointsFragmentShader string

// PresentVertexShader draws a fullscreen triangle.
//
//go:embed present.vert
var PresentVertexShader string

// PresentFragmentShader copies the offscreen frame to the window.
//
//go:embed present.frag
var PresentFragmentShader string
