package scene

import gomath "math"

// Viewport describes the output surface. Width and Height are in screen
// coordinates; the device pixel ratio maps them to physical pixels.
type Viewport struct {
	Width            int
	Height           int
	DevicePixelRatio float32
	MaxPixelRatio    float32
}

// PixelRatio returns the device pixel ratio limited to MaxPixelRatio.
func (v Viewport) PixelRatio() float32 {
	r := v.DevicePixelRatio
	if r <= 0 {
		r = 1
	}
	if v.MaxPixelRatio > 0 && r > v.MaxPixelRatio {
		r = v.MaxPixelRatio
	}
	return r
}

// BufferSize returns the size the scene is rendered at.
func (v Viewport) BufferSize() (int, int) {
	r := float64(v.PixelRatio())
	return scaleDim(v.Width, r), scaleDim(v.Height, r)
}

// DrawableSize returns the physical size of the output surface.
func (v Viewport) DrawableSize() (int, int) {
	r := float64(v.DevicePixelRatio)
	if r <= 0 {
		r = 1
	}
	return scaleDim(v.Width, r), scaleDim(v.Height, r)
}

// Capped reports whether the scene renders below the surface resolution.
func (v Viewport) Capped() bool {
	bw, bh := v.BufferSize()
	dw, dh := v.DrawableSize()
	return bw != dw || bh != dh
}

// Aspect returns width / height, or 1 for a degenerate viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

func scaleDim(n int, r float64) int {
	return max(1, int(gomath.Floor(float64(n)*r)))
}
