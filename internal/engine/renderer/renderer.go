// Package renderer draws the Earth scene with OpenGL 4.1.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/earthview/internal/engine/framebuffer"
	"github.com/Faultbox/earthview/internal/engine/geometry"
	"github.com/Faultbox/earthview/internal/engine/renderer/shaders"
	"github.com/Faultbox/earthview/internal/engine/scene"
	"github.com/Faultbox/earthview/internal/engine/shader"
	"github.com/Faultbox/earthview/internal/logger"
	"github.com/Faultbox/earthview/pkg/math"
)

// Renderer handles all OpenGL rendering.
type Renderer struct {
	log *zap.Logger

	viewport scene.Viewport

	phong      *shader.Program
	atmosphere *shader.Program
	points     *shader.Program
	present    *shader.Program

	meshes   map[*geometry.Mesh]*meshBuffer
	stars    *pointBuffer
	emptyVAO uint32 // For the attribute-less present pass

	textures []uint32

	// Only allocated while the pixel ratio is capped.
	offscreen *framebuffer.Framebuffer
	msaa      int32
}

// New creates a new renderer. msaa is the sample count of the offscreen
// target, matching what the window was created with.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(vp scene.Viewport, msaa int) (*Renderer, error) {
	r := &Renderer{
		log:    logger.Named("renderer"),
		meshes: make(map[*geometry.Mesh]*meshBuffer),
		msaa:   int32(msaa),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.MULTISAMPLE)
	gl.ClearColor(0, 0, 0, 1)

	var err error
	if r.phong, err = shader.New("phong", shaders.PhongVertexShader, shaders.PhongFragmentShader); err != nil {
		return nil, err
	}
	if r.atmosphere, err = shader.New("atmosphere", shaders.AtmosphereVertexShader, shaders.AtmosphereFragmentShader); err != nil {
		r.Close()
		return nil, err
	}
	if r.points, err = shader.New("points", shaders.PointsVertexShader, shaders.PointsFragmentShader); err != nil {
		r.Close()
		return nil, err
	}
	if r.present, err = shader.New("present", shaders.PresentVertexShader, shaders.PresentFragmentShader); err != nil {
		r.Close()
		return nil, err
	}

	gl.GenVertexArrays(1, &r.emptyVAO)

	if err := r.SetViewport(vp); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

// Close releases every GL object the renderer created.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")

	for _, mb := range r.meshes {
		mb.delete()
	}
	r.meshes = map[*geometry.Mesh]*meshBuffer{}
	if r.stars != nil {
		r.stars.delete()
		r.stars = nil
	}
	if len(r.textures) > 0 {
		gl.DeleteTextures(int32(len(r.textures)), &r.textures[0])
		r.textures = nil
	}
	if r.offscreen != nil {
		r.offscreen.Destroy()
		r.offscreen = nil
	}
	if r.emptyVAO != 0 {
		gl.DeleteVertexArrays(1, &r.emptyVAO)
		r.emptyVAO = 0
	}
	for _, p := range []*shader.Program{r.phong, r.atmosphere, r.points, r.present} {
		if p != nil {
			p.Delete()
		}
	}
}

// SetViewport resizes the render target. Calling it again with the same
// viewport is a no-op.
func (r *Renderer) SetViewport(vp scene.Viewport) error {
	if vp == r.viewport {
		return nil
	}

	bw, bh := vp.BufferSize()
	if !vp.Capped() {
		if r.offscreen != nil {
			r.offscreen.Destroy()
			r.offscreen = nil
		}
	} else if r.offscreen == nil {
		fb, err := framebuffer.New(int32(bw), int32(bh), r.msaa)
		if err != nil {
			return err
		}
		r.offscreen = fb
		r.log.Debug("offscreen target created", zap.Int32("samples", fb.SampleCount()))
	} else if err := r.offscreen.Resize(int32(bw), int32(bh)); err != nil {
		r.offscreen = nil
		return err
	}
	r.viewport = vp

	dw, dh := vp.DrawableSize()
	r.log.Debug("viewport set",
		zap.Int("width", vp.Width),
		zap.Int("height", vp.Height),
		zap.Float32("pixel_ratio", vp.PixelRatio()),
		zap.Int("buffer_width", bw),
		zap.Int("buffer_height", bh),
		zap.Int("drawable_width", dw),
		zap.Int("drawable_height", dh),
	)
	return nil
}

// Render draws one frame: opaque planet, then the transparent starfield,
// clouds and atmosphere in that order.
func (r *Renderer) Render(s *scene.Scene) {
	bw, bh := r.viewport.BufferSize()
	if r.offscreen != nil {
		r.offscreen.Bind()
	} else {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.Viewport(0, 0, int32(bw), int32(bh))
	}
	gl.DepthMask(true)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := s.Camera.View()
	proj := s.Camera.Projection()

	gl.Disable(gl.BLEND)
	gl.CullFace(gl.BACK)
	r.drawBody(&s.Planet, s, view, proj)

	gl.Enable(gl.BLEND)
	gl.BlendFuncSeparate(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	r.drawStars(&s.Stars, view, proj, float32(bh)/2)
	r.drawBody(&s.Clouds, s, view, proj)
	r.drawAtmosphere(&s.Atmosphere, view, proj)
	gl.CullFace(gl.BACK)
	gl.Disable(gl.BLEND)

	if r.offscreen != nil {
		r.presentOffscreen()
	}
}

func (r *Renderer) drawBody(b *scene.Body, s *scene.Scene, view, proj math.Mat4) {
	mb := r.mesh(b.Mesh)
	m := &b.Material
	model := b.Model()
	modelView := view.Mul(model)
	normalMatrix := modelView.NormalMatrix()
	sunDir := view.TransformDirection(s.Sun.Direction().Array())
	sun := s.Sun.Radiance()
	ambient := s.Ambient.Radiance()

	p := r.phong
	p.Use()
	gl.UniformMatrix4fv(p.Uniform("uModel"), 1, false, model.Ptr())
	gl.UniformMatrix4fv(p.Uniform("uView"), 1, false, view.Ptr())
	gl.UniformMatrix4fv(p.Uniform("uProjection"), 1, false, proj.Ptr())
	gl.UniformMatrix3fv(p.Uniform("uNormalMatrix"), 1, false, normalMatrix.Ptr())

	bindMap(p, "uMap", "uUseMap", 0, m.Map)
	bindMap(p, "uSpecularMap", "uUseSpecularMap", 1, m.SpecularMap)
	bindMap(p, "uNormalMap", "uUseNormalMap", 2, m.NormalMap)
	gl.Uniform1f(p.Uniform("uNormalScale"), m.NormalScale)

	gl.Uniform3f(p.Uniform("uColor"), m.Color.X, m.Color.Y, m.Color.Z)
	gl.Uniform3f(p.Uniform("uSpecular"), m.Specular.X, m.Specular.Y, m.Specular.Z)
	gl.Uniform1f(p.Uniform("uShininess"), m.Shininess)
	gl.Uniform1f(p.Uniform("uOpacity"), m.Opacity)

	gl.Uniform3f(p.Uniform("uSunDirection"), sunDir[0], sunDir[1], sunDir[2])
	gl.Uniform3f(p.Uniform("uSunColor"), sun.X, sun.Y, sun.Z)
	gl.Uniform3f(p.Uniform("uAmbientColor"), ambient.X, ambient.Y, ambient.Z)

	mb.draw()
}

func (r *Renderer) drawAtmosphere(a *scene.Atmosphere, view, proj math.Mat4) {
	mb := r.mesh(a.Mesh)
	model := math.Identity()
	normalMatrix := view.Mul(model).NormalMatrix()

	p := r.atmosphere
	p.Use()
	gl.UniformMatrix4fv(p.Uniform("uModel"), 1, false, model.Ptr())
	gl.UniformMatrix4fv(p.Uniform("uView"), 1, false, view.Ptr())
	gl.UniformMatrix4fv(p.Uniform("uProjection"), 1, false, proj.Ptr())
	gl.UniformMatrix3fv(p.Uniform("uNormalMatrix"), 1, false, normalMatrix.Ptr())
	gl.Uniform3f(p.Uniform("uGlowColor"), a.Color.X, a.Color.Y, a.Color.Z)
	gl.Uniform1f(p.Uniform("uFalloff"), a.Falloff)

	// Back faces only: the shell shows as a halo around the planet.
	gl.CullFace(gl.FRONT)
	mb.draw()
}

func (r *Renderer) drawStars(st *scene.Starfield, view, proj math.Mat4, scale float32) {
	if r.stars == nil {
		r.stars = newPointBuffer(st.Positions)
	}

	p := r.points
	p.Use()
	gl.UniformMatrix4fv(p.Uniform("uView"), 1, false, view.Ptr())
	gl.UniformMatrix4fv(p.Uniform("uProjection"), 1, false, proj.Ptr())
	gl.Uniform1f(p.Uniform("uSize"), st.Size)
	gl.Uniform1f(p.Uniform("uScale"), scale)
	gl.Uniform3f(p.Uniform("uColor"), st.Color.X, st.Color.Y, st.Color.Z)
	gl.Uniform1f(p.Uniform("uOpacity"), st.Opacity)

	r.stars.draw()
}

func (r *Renderer) presentOffscreen() {
	r.offscreen.Resolve()
	r.offscreen.Unbind()
	dw, dh := r.viewport.DrawableSize()
	gl.Viewport(0, 0, int32(dw), int32(dh))
	gl.Disable(gl.DEPTH_TEST)

	r.present.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.offscreen.ColorTexture())
	gl.Uniform1i(r.present.Uniform("uFrame"), 0)

	gl.BindVertexArray(r.emptyVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)

	gl.Enable(gl.DEPTH_TEST)
}

// ReadPixels returns the last rendered frame as bottom-up RGBA rows at
// render resolution. Call it after Render and before the buffer swap.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	if r.offscreen != nil {
		w, h := r.offscreen.Size()
		return r.offscreen.ReadPixels(), int(w), int(h)
	}

	w, h := r.viewport.BufferSize()
	pixels := make([]byte, w*h*4)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

func bindMap(p *shader.Program, sampler, flag string, unit uint32, tex scene.TextureID) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
	gl.Uniform1i(p.Uniform(sampler), int32(unit))
	use := int32(0)
	if tex != 0 {
		use = 1
	}
	gl.Uniform1i(p.Uniform(flag), use)
}
