// Package framebuffer provides the offscreen render target used when the
// display's pixel ratio exceeds the configured cap.
package framebuffer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Framebuffer is an offscreen render target. With more than one sample the
// scene is drawn into multisampled renderbuffers and Resolve copies it into
// a plain colour texture; otherwise the texture is drawn into directly.
type Framebuffer struct {
	samples int32
	width   int32
	height  int32

	// Draw target. Same as resolveFBO when not multisampled.
	drawFBO  uint32
	colorRBO uint32
	depthRBO uint32

	resolveFBO   uint32
	colorTexture uint32
}

// New creates a framebuffer. samples is clamped to what the driver
// supports; 0 or 1 disables multisampling.
func New(width, height, samples int32) (*Framebuffer, error) {
	var maxSamples int32
	gl.GetIntegerv(gl.MAX_SAMPLES, &maxSamples)

	fb := &Framebuffer{
		samples: Samples(samples, maxSamples),
		width:   max(width, 1),
		height:  max(height, 1),
	}
	if err := fb.create(); err != nil {
		return nil, fmt.Errorf("creating framebuffer: %w", err)
	}
	return fb, nil
}

// Samples returns the sample count to use for a request given the driver
// limit. Results below 2 mean no multisampling.
func Samples(requested, limit int32) int32 {
	if requested < 2 {
		return 0
	}
	if limit > 0 && requested > limit {
		requested = limit
	}
	if requested < 2 {
		return 0
	}
	return requested
}

func (fb *Framebuffer) multisampled() bool {
	return fb.samples > 1
}

func (fb *Framebuffer) create() error {
	// Resolve target: the texture the present pass samples
	gl.GenFramebuffers(1, &fb.resolveFBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.resolveFBO)

	gl.GenTextures(1, &fb.colorTexture)
	gl.BindTexture(gl.TEXTURE_2D, fb.colorTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, fb.width, fb.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.colorTexture, 0)

	if fb.multisampled() {
		if err := checkComplete("resolve"); err != nil {
			fb.Destroy()
			return err
		}

		gl.GenFramebuffers(1, &fb.drawFBO)
		gl.BindFramebuffer(gl.FRAMEBUFFER, fb.drawFBO)

		gl.GenRenderbuffers(1, &fb.colorRBO)
		gl.BindRenderbuffer(gl.RENDERBUFFER, fb.colorRBO)
		gl.RenderbufferStorageMultisample(gl.RENDERBUFFER, fb.samples, gl.RGBA8, fb.width, fb.height)
		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, fb.colorRBO)
	} else {
		fb.drawFBO = fb.resolveFBO
	}

	// Depth lives on the draw target only
	gl.GenRenderbuffers(1, &fb.depthRBO)
	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.depthRBO)
	if fb.multisampled() {
		gl.RenderbufferStorageMultisample(gl.RENDERBUFFER, fb.samples, gl.DEPTH_COMPONENT24, fb.width, fb.height)
	} else {
		gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, fb.width, fb.height)
	}
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.depthRBO)

	if err := checkComplete("draw"); err != nil {
		fb.Destroy()
		return err
	}

	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return nil
}

func checkComplete(which string) error {
	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("%s framebuffer incomplete: 0x%x", which, status)
	}
	return nil
}

// Bind makes this framebuffer the current render target.
func (fb *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.drawFBO)
	gl.Viewport(0, 0, fb.width, fb.height)
}

// Unbind restores the default framebuffer.
func (fb *Framebuffer) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Resolve copies the multisampled image into ColorTexture. Call it after
// drawing and before sampling or reading pixels.
func (fb *Framebuffer) Resolve() {
	if !fb.multisampled() {
		return
	}
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb.drawFBO)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, fb.resolveFBO)
	gl.BlitFramebuffer(0, 0, fb.width, fb.height, 0, 0, fb.width, fb.height, gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// ColorTexture returns the resolved colour texture.
func (fb *Framebuffer) ColorTexture() uint32 {
	return fb.colorTexture
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (width, height int32) {
	return fb.width, fb.height
}

// SampleCount returns the samples per pixel, 0 when not multisampled.
func (fb *Framebuffer) SampleCount() int32 {
	return fb.samples
}

// Resize recreates the attachments if the dimensions changed.
func (fb *Framebuffer) Resize(width, height int32) error {
	width, height = max(width, 1), max(height, 1)
	if width == fb.width && height == fb.height {
		return nil
	}

	fb.Destroy()
	fb.width = width
	fb.height = height
	if err := fb.create(); err != nil {
		return fmt.Errorf("resizing framebuffer to %dx%d: %w", width, height, err)
	}
	return nil
}

// ReadPixels reads the resolved colour as bottom-up RGBA rows.
func (fb *Framebuffer) ReadPixels() []byte {
	pixels := make([]byte, fb.width*fb.height*4)

	var prevFBO int32
	gl.GetIntegerv(gl.READ_FRAMEBUFFER_BINDING, &prevFBO)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb.resolveFBO)
	gl.ReadBuffer(gl.COLOR_ATTACHMENT0)

	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, fb.width, fb.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, uint32(prevFBO))
	return pixels
}

// Destroy releases all OpenGL resources.
func (fb *Framebuffer) Destroy() {
	if fb.drawFBO != 0 && fb.drawFBO != fb.resolveFBO {
		gl.DeleteFramebuffers(1, &fb.drawFBO)
	}
	fb.drawFBO = 0
	if fb.resolveFBO != 0 {
		gl.DeleteFramebuffers(1, &fb.resolveFBO)
		fb.resolveFBO = 0
	}
	if fb.colorTexture != 0 {
		gl.DeleteTextures(1, &fb.colorTexture)
		fb.colorTexture = 0
	}
	if fb.colorRBO != 0 {
		gl.DeleteRenderbuffers(1, &fb.colorRBO)
		fb.colorRBO = 0
	}
	if fb.depthRBO != 0 {
		gl.DeleteRenderbuffers(1, &fb.depthRBO)
		fb.depthRBO = 0
	}
}
