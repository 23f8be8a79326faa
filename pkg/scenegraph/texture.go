package scenegraph

import (
	"image"

	"github.com/garagekit/restyle/pkg/math"
)

// Texture is a raster image bound to a material's color-map slot plus its
// UV transform. Repeat, offset and rotation are view parameters applied at
// sample time; they are not baked into the pixels.
type Texture struct {
	Image      *image.NRGBA
	SRGB       bool
	Repeat     math.Vec2
	Offset     math.Vec2
	Rotation   float32 // radians, about the UV center
	Anisotropy int

	disposed bool
}

// NewTexture wraps an image with repeat wrapping on both axes and no UV
// transform.
func NewTexture(img *image.NRGBA) *Texture {
	return &Texture{
		Image:      img,
		SRGB:       true,
		Repeat:     math.Vec2{X: 1, Y: 1},
		Anisotropy: 4,
	}
}

// Dispose releases the pixel data. Safe to call more than once.
func (t *Texture) Dispose() {
	if t == nil || t.disposed {
		return
	}
	t.disposed = true
	t.Image = nil
}

// Disposed reports whether Dispose has been called.
func (t *Texture) Disposed() bool {
	return t != nil && t.disposed
}
