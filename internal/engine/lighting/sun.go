// Package lighting describes the scene's light sources.
package lighting

import "github.com/Faultbox/earthview/pkg/math"

// White is the default light colour.
var White = math.Vec3{X: 1, Y: 1, Z: 1}

// DirectionalLight shines parallel rays from Position towards Target.
type DirectionalLight struct {
	Color     math.Vec3
	Intensity float32
	Position  math.Vec3
	Target    math.Vec3
}

// NewSun returns the scene's key light: white, intensity 1.2, placed
// upper-left-front of the planet.
func NewSun() DirectionalLight {
	return DirectionalLight{
		Color:     White,
		Intensity: 1.2,
		Position:  math.Vec3{X: -5, Y: 3, Z: 5},
	}
}

// Direction returns the unit vector pointing from the target towards the
// light, the convention the shaders use for N·L.
func (l DirectionalLight) Direction() math.Vec3 {
	return l.Position.Sub(l.Target).Normalize()
}

// Radiance returns colour scaled by intensity.
func (l DirectionalLight) Radiance() math.Vec3 {
	return l.Color.Scale(l.Intensity)
}

// AmbientLight lights every surface equally.
type AmbientLight struct {
	Color     math.Vec3
	Intensity float32
}

// NewAmbientFill returns the low ambient term that keeps the night side
// from going fully black.
func NewAmbientFill() AmbientLight {
	return AmbientLight{Color: White, Intensity: 0.1}
}

// Radiance returns colour scaled by intensity.
func (l AmbientLight) Radiance() math.Vec3 {
	return l.Color.Scale(l.Intensity)
}
