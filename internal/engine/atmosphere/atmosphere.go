// Package atmosphere defines the rim glow drawn on the atmosphere shell.
//
// Falloff and Color are fed to renderer/shaders/atmosphere.frag as uniforms.
// RimIntensity is the reference form of that shader's per-pixel intensity
// and what its tests check against.
package atmosphere

import "github.com/Faultbox/earthview/pkg/math"

// Falloff is the N·V value at which the glow fades to zero.
const Falloff = 0.6

// Color is the glow tint at full intensity.
var Color = math.Vec3{X: 0.3, Y: 0.6, Z: 1.0}

// RimIntensity returns max(0, Falloff - N·V)^2 for a view-space surface
// normal and view direction. Both vectors are normalized first.
func RimIntensity(normal, view math.Vec3) float32 {
	d := Falloff - normal.Normalize().Dot(view.Normalize())
	if d <= 0 {
		return 0
	}
	return d * d
}
