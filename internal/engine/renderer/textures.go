package renderer

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/earthview/internal/engine/scene"
	"github.com/Faultbox/earthview/internal/engine/texture"
)

// Upload copies img to a new mipmapped texture. Rows are flipped so the
// image's top row lands at v=1, matching the sphere's UV layout.
func (r *Renderer) Upload(img *image.RGBA) scene.TextureID {
	flipped := texture.FlipVertical(img)
	w, h := int32(flipped.Bounds().Dx()), int32(flipped.Bounds().Dy())

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&flipped.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.textures = append(r.textures, texID)
	r.log.Debug("texture uploaded",
		zap.Uint32("id", texID),
		zap.Int32("width", w),
		zap.Int32("height", h),
	)
	return scene.TextureID(texID)
}
