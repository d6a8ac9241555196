// Package camera provides the perspective camera and its orbit controls.
package camera

import (
	gomath "math"

	"github.com/Faultbox/earthview/pkg/math"
)

// PerspectiveCamera is a pinhole camera looking at Target.
type PerspectiveCamera struct {
	FovY     float32 // Vertical field of view, degrees
	Aspect   float32
	Near     float32
	Far      float32
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3
}

// NewPerspectiveCamera creates a camera 3.5 units down +Z looking at the
// origin with a 45° vertical field of view.
func NewPerspectiveCamera(aspect float32) *PerspectiveCamera {
	return &PerspectiveCamera{
		FovY:     45,
		Aspect:   aspect,
		Near:     0.1,
		Far:      1000,
		Position: math.Vec3{Z: 3.5},
		Up:       math.Vec3{Y: 1},
	}
}

// SetAspect updates the aspect ratio from a viewport size.
// Degenerate sizes leave the camera unchanged.
func (c *PerspectiveCamera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// Projection returns the projection matrix.
func (c *PerspectiveCamera) Projection() math.Mat4 {
	return math.Perspective(c.FovY*gomath.Pi/180, c.Aspect, c.Near, c.Far)
}

// View returns the view matrix.
func (c *PerspectiveCamera) View() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// Distance returns the distance from the camera to its target.
func (c *PerspectiveCamera) Distance() float32 {
	return c.Position.Distance(c.Target)
}
