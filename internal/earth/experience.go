// Package earth runs the rotating Earth: it owns the scene, applies
// textures as they arrive, spins the planet and clouds every frame and
// feeds pointer input to the orbit camera.
package earth

import (
	"fmt"
	"image"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/earthview/internal/config"
	"github.com/Faultbox/earthview/internal/engine/camera"
	"github.com/Faultbox/earthview/internal/engine/input"
	"github.com/Faultbox/earthview/internal/engine/scene"
	"github.com/Faultbox/earthview/internal/engine/texture"
	"github.com/Faultbox/earthview/internal/logger"
)

// Per-frame spin in radians. Clouds drift 1.5x faster than the surface.
const (
	PlanetSpin = 0.001
	CloudSpin  = 0.0015
)

// Texture slots.
const (
	SlotDay      = "day"
	SlotSpecular = "specular"
	SlotNormal   = "normal"
	SlotClouds   = "clouds"
)

// Surface is where the scene is drawn.
type Surface interface {
	Upload(img *image.RGBA) scene.TextureID
	SetViewport(vp scene.Viewport) error
	Render(s *scene.Scene)
}

// Indicator is the loading notice shown until the day texture arrives.
type Indicator interface {
	Hide()
}

// TextureSource delivers decoded textures to the render thread.
type TextureSource interface {
	Start(reqs ...texture.Request)
	Drain(apply func(texture.Result)) int
	Close()
}

// TextureState is the outcome of one texture fetch.
type TextureState int

const (
	TexturePending TextureState = iota
	TextureLoaded
	TextureFailed
)

func (s TextureState) String() string {
	switch s {
	case TextureLoaded:
		return "loaded"
	case TextureFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Experience is the Earth viewer. All methods must be called from the
// thread that owns the surface.
type Experience struct {
	log *zap.Logger

	scene     *scene.Scene
	controls  *camera.OrbitControls
	surface   Surface
	indicator Indicator
	textures  TextureSource

	viewport      scene.Viewport
	maxPixelRatio float32

	states map[string]TextureState
	errs   map[string]error
	hidden bool
	drag   bool
	frames uint64
	closed bool
}

// New wires the scene to its surface and starts the four texture fetches.
func New(s *scene.Scene, surface Surface, indicator Indicator, textures TextureSource, assets config.AssetsConfig, maxPixelRatio float32) (*Experience, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	e := &Experience{
		log:           logger.Named("earth"),
		scene:         s,
		controls:      camera.NewOrbitControls(s.Camera),
		surface:       surface,
		indicator:     indicator,
		textures:      textures,
		maxPixelRatio: maxPixelRatio,
		states:        make(map[string]TextureState, 4),
		errs:          make(map[string]error),
	}

	reqs := []texture.Request{
		{Key: SlotDay, Source: assets.Day},
		{Key: SlotSpecular, Source: assets.Specular},
		{Key: SlotNormal, Source: assets.Normal},
		{Key: SlotClouds, Source: assets.Clouds},
	}
	for _, r := range reqs {
		e.states[r.Key] = TexturePending
	}
	textures.Start(reqs...)

	e.log.Info("earth created",
		zap.Int("stars", s.Stars.Count()),
		zap.Float32("camera_distance", s.Camera.Distance()),
	)
	return e, nil
}

// Scene returns the scene being drawn.
func (e *Experience) Scene() *scene.Scene {
	return e.scene
}

// Frames returns the number of ticks run so far.
func (e *Experience) Frames() uint64 {
	return e.frames
}

// TextureState reports how the fetch for slot ended.
func (e *Experience) TextureState(slot string) TextureState {
	return e.states[slot]
}

// TextureErr returns the error a failed fetch ended with.
func (e *Experience) TextureErr(slot string) error {
	return e.errs[slot]
}

// Tick advances one frame: apply arrived textures, spin, damp the
// camera, draw.
func (e *Experience) Tick() {
	if e.closed {
		return
	}
	e.textures.Drain(e.applyTexture)

	e.frames++
	e.scene.Planet.Rotation = spin(e.frames, PlanetSpin)
	e.scene.Clouds.Rotation = spin(e.frames, CloudSpin)

	e.controls.Update()
	e.surface.Render(e.scene)
}

// spin returns frames*perFrame wrapped into [0, 2π). Derived from the frame
// count so float32 rounding never accumulates.
func spin(frames uint64, perFrame float64) float32 {
	return float32(gomath.Mod(float64(frames)*perFrame, 2*gomath.Pi))
}

func (e *Experience) applyTexture(res texture.Result) {
	if res.Err != nil {
		e.states[res.Key] = TextureFailed
		e.errs[res.Key] = res.Err
		e.log.Warn("texture failed",
			zap.String("slot", res.Key),
			zap.String("source", res.Source),
			zap.Error(res.Err),
		)
		return
	}

	id := e.surface.Upload(res.Image)
	switch res.Key {
	case SlotDay:
		e.scene.Planet.Material.Map = id
	case SlotSpecular:
		e.scene.Planet.Material.SpecularMap = id
	case SlotNormal:
		e.scene.Planet.Material.NormalMap = id
	case SlotClouds:
		e.scene.Clouds.Material.Map = id
	default:
		e.log.Warn("texture for unknown slot", zap.String("slot", res.Key))
		return
	}
	e.states[res.Key] = TextureLoaded

	e.log.Info("texture loaded",
		zap.String("slot", res.Key),
		zap.Int("width", res.Image.Bounds().Dx()),
		zap.Int("height", res.Image.Bounds().Dy()),
	)

	if res.Key == SlotDay && !e.hidden {
		e.hidden = true
		e.indicator.Hide()
	}
}

// Resize fits the camera and surface to a window of width x height
// screen units at the given device pixel ratio. Repeating a resize with
// the same values changes nothing.
func (e *Experience) Resize(width, height int, devicePixelRatio float32) error {
	vp := scene.Viewport{
		Width:            width,
		Height:           height,
		DevicePixelRatio: devicePixelRatio,
		MaxPixelRatio:    e.maxPixelRatio,
	}
	if vp == e.viewport {
		return nil
	}

	if err := e.surface.SetViewport(vp); err != nil {
		return fmt.Errorf("resizing surface to %dx%d: %w", width, height, err)
	}
	e.scene.Camera.SetAspect(width, height)
	e.viewport = vp
	return nil
}

// Viewport returns the current output size.
func (e *Experience) Viewport() scene.Viewport {
	return e.viewport
}

// HandleEvent feeds pointer input to the orbit controls. Left drag
// rotates, the wheel zooms.
func (e *Experience) HandleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventMouseDown:
		if ev.Button == input.ButtonLeft {
			e.drag = true
		}
	case input.EventMouseUp:
		if ev.Button == input.ButtonLeft {
			e.drag = false
		}
	case input.EventMouseMove:
		if e.drag {
			e.controls.HandleDrag(float32(ev.DeltaX), float32(ev.DeltaY), e.viewport.Height)
		}
	case input.EventMouseWheel:
		e.controls.HandleZoom(ev.Wheel)
	}
}

// Close cancels outstanding fetches. Further ticks do nothing.
func (e *Experience) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.textures.Close()
	e.log.Info("earth closed", zap.Uint64("frames", e.frames))
}
