// Package scene holds the Earth scene graph: bodies, materials, starfield,
// lights and camera. It has no GL dependencies; the renderer reads it.
package scene

import (
	"fmt"
	"math/rand"

	"github.com/Faultbox/earthview/internal/engine/atmosphere"
	"github.com/Faultbox/earthview/internal/engine/camera"
	"github.com/Faultbox/earthview/internal/engine/geometry"
	"github.com/Faultbox/earthview/internal/engine/lighting"
	"github.com/Faultbox/earthview/pkg/math"
)

// Concentric shell radii. Clouds and atmosphere sit just outside the
// surface so the shells never interpenetrate.
const (
	PlanetRadius     = 1.0
	CloudRadius      = 1.02
	AtmosphereRadius = 1.1
)

// Sphere tessellation shared by all three shells.
const (
	WidthSegments  = 64
	HeightSegments = 64
)

// Starfield parameters.
const (
	StarCount  = 8000
	StarExtent = 100 // Edge length of the cube the stars are scattered in
)

// TextureID is a GPU texture handle. Zero means "not loaded".
type TextureID uint32

// Material is a Blinn-Phong surface description.
type Material struct {
	Map         TextureID // Diffuse colour
	SpecularMap TextureID // Red channel scales specular
	NormalMap   TextureID // Tangent-space normals
	NormalScale float32

	Color     math.Vec3
	Specular  math.Vec3
	Shininess float32

	Transparent bool
	Opacity     float32
}

// Body is a sphere mesh rotating about the Y axis.
type Body struct {
	Name     string
	Mesh     *geometry.Mesh
	Material Material
	Rotation float32 // Radians about +Y
}

// Radius returns the mesh radius.
func (b *Body) Radius() float32 {
	return b.Mesh.Radius
}

// Model returns the body's model matrix.
func (b *Body) Model() math.Mat4 {
	return math.RotateY(b.Rotation)
}

// Atmosphere is the back-face shell shaded with a rim glow.
type Atmosphere struct {
	Mesh    *geometry.Mesh
	Color   math.Vec3
	Falloff float32
}

// Starfield is a fixed point cloud.
type Starfield struct {
	Positions []float32
	Size      float32 // World-space point size, attenuated with distance
	Color     math.Vec3
	Opacity   float32
}

// Count returns the number of stars.
func (s *Starfield) Count() int {
	return len(s.Positions) / 3
}

// Scene is everything drawn in one frame.
type Scene struct {
	Planet     Body
	Clouds     Body
	Atmosphere Atmosphere
	Stars      Starfield

	Sun     lighting.DirectionalLight
	Ambient lighting.AmbientLight

	Camera *camera.PerspectiveCamera
}

// New builds the Earth scene. rng seeds the starfield.
func New(aspect float32, rng *rand.Rand) *Scene {
	return &Scene{
		Planet: Body{
			Name: "planet",
			Mesh: geometry.Sphere(PlanetRadius, WidthSegments, HeightSegments),
			Material: Material{
				NormalScale: 0.5,
				Color:       math.Vec3{X: 1, Y: 1, Z: 1},
				Specular:    grey,
				Shininess:   10,
				Opacity:     1,
			},
		},
		Clouds: Body{
			Name: "clouds",
			Mesh: geometry.Sphere(CloudRadius, WidthSegments, HeightSegments),
			Material: Material{
				NormalScale: 1,
				Color:       math.Vec3{X: 1, Y: 1, Z: 1},
				Specular:    defaultSpecular,
				Shininess:   30,
				Transparent: true,
				Opacity:     0.4,
			},
		},
		Atmosphere: Atmosphere{
			Mesh:    geometry.Sphere(AtmosphereRadius, WidthSegments, HeightSegments),
			Color:   atmosphere.Color,
			Falloff: atmosphere.Falloff,
		},
		Stars: Starfield{
			Positions: geometry.Starfield(StarCount, StarExtent, rng),
			Size:      0.02,
			Color:     math.Vec3{X: 1, Y: 1, Z: 1},
			Opacity:   0.8,
		},
		Sun:     lighting.NewSun(),
		Ambient: lighting.NewAmbientFill(),
		Camera:  camera.NewPerspectiveCamera(aspect),
	}
}

var (
	// CSS "grey", 0x808080.
	grey = math.Vec3{X: 128.0 / 255, Y: 128.0 / 255, Z: 128.0 / 255}
	// Phong default specular, 0x111111.
	defaultSpecular = math.Vec3{X: 17.0 / 255, Y: 17.0 / 255, Z: 17.0 / 255}
)

// Validate checks the shell ordering planet < clouds < atmosphere.
func (s *Scene) Validate() error {
	p, c, a := s.Planet.Radius(), s.Clouds.Radius(), s.Atmosphere.Mesh.Radius
	if !(p < c && c < a) {
		return fmt.Errorf("shell radii out of order: planet %v, clouds %v, atmosphere %v", p, c, a)
	}
	return nil
}
