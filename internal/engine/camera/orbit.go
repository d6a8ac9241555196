package camera

import (
	gomath "math"

	"github.com/Faultbox/earthview/pkg/math"
)

// OrbitControls rotates and zooms a camera around its target with
// inertial damping. Input handlers only accumulate deltas; Update applies
// them and must be called once per frame.
type OrbitControls struct {
	camera *PerspectiveCamera

	// Damping
	EnableDamping bool
	DampingFactor float32

	// Constraints
	MinDistance float32
	MaxDistance float32

	// Sensitivity
	RotateSpeed float32
	ZoomSpeed   float32

	sphericalDelta math.Spherical
	scale          float32
}

// NewOrbitControls binds controls to a camera with damping factor 0.05
// and a zoom range of [1.5, 10].
func NewOrbitControls(cam *PerspectiveCamera) *OrbitControls {
	return &OrbitControls{
		camera:        cam,
		EnableDamping: true,
		DampingFactor: 0.05,
		MinDistance:   1.5,
		MaxDistance:   10,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		scale:         1,
	}
}

// Camera returns the controlled camera.
func (o *OrbitControls) Camera() *PerspectiveCamera {
	return o.camera
}

// HandleDrag queues a rotation from a pointer drag of (dx, dy) pixels.
// A drag across the full viewport height turns the camera once around.
func (o *OrbitControls) HandleDrag(dx, dy float32, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	h := float32(viewportHeight)
	o.sphericalDelta.Theta -= 2 * gomath.Pi * dx / h * o.RotateSpeed
	o.sphericalDelta.Phi -= 2 * gomath.Pi * dy / h * o.RotateSpeed
}

// HandleZoom queues a dolly from wheel steps. Positive steps move closer.
func (o *OrbitControls) HandleZoom(steps float32) {
	if steps == 0 {
		return
	}
	zoomScale := float32(gomath.Pow(0.95, float64(o.ZoomSpeed*absf(steps))))
	if steps > 0 {
		o.scale *= zoomScale
	} else {
		o.scale /= zoomScale
	}
}

// Update applies pending rotation and zoom to the camera and decays the
// remaining rotation. It reports whether the camera moved.
func (o *OrbitControls) Update() bool {
	cam := o.camera
	offset := cam.Position.Sub(cam.Target)
	s := math.SphericalFromVec3(offset)

	if o.EnableDamping {
		s.Theta += o.sphericalDelta.Theta * o.DampingFactor
		s.Phi += o.sphericalDelta.Phi * o.DampingFactor
	} else {
		s.Theta += o.sphericalDelta.Theta
		s.Phi += o.sphericalDelta.Phi
	}
	s = s.MakeSafe()

	s.Radius = math.Clamp(s.Radius*o.scale, o.MinDistance, o.MaxDistance)

	newPos := cam.Target.Add(s.Vec3())
	moved := newPos.Distance(cam.Position) > 1e-6
	cam.Position = newPos

	if o.EnableDamping {
		o.sphericalDelta.Theta *= 1 - o.DampingFactor
		o.sphericalDelta.Phi *= 1 - o.DampingFactor
	} else {
		o.sphericalDelta = math.Spherical{}
	}
	o.scale = 1

	return moved
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
