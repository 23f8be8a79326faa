// Package pattern synthesizes the tileable wrap rasters, plate faces and
// decal stickers applied by the styling engine. Everything is drawn into
// plain NRGBA images with a small scanline rasterizer; GPU texture state
// (wrapping, sRGB, anisotropy) is attached by the caller.
package pattern

import (
	"image"
	"image/color"
	gomath "math"
)

// Canvas wraps an NRGBA image with the primitive fills the synthesizer
// needs. Coordinates may extend outside the image; pixels are clipped.
type Canvas struct {
	img *image.NRGBA
	w   int
	h   int
}

// NewCanvas allocates a size×size canvas.
func NewCanvas(size int) *Canvas {
	return NewCanvasRect(size, size)
}

// NewCanvasRect allocates a w×h canvas.
func NewCanvasRect(w, h int) *Canvas {
	return &Canvas{
		img: image.NewNRGBA(image.Rect(0, 0, w, h)),
		w:   w,
		h:   h,
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// Fill covers the whole canvas with a color, replacing existing pixels
// (including alpha).
func (c *Canvas) Fill(col color.NRGBA) {
	for y := 0; y < c.h; y++ {
		i := y * c.img.Stride
		for x := 0; x < c.w; x++ {
			c.img.Pix[i] = col.R
			c.img.Pix[i+1] = col.G
			c.img.Pix[i+2] = col.B
			c.img.Pix[i+3] = col.A
			i += 4
		}
	}
}

// FillRect fills an axis-aligned rectangle, alpha-blending onto the
// existing pixels.
func (c *Canvas) FillRect(x, y, w, h int, col color.NRGBA) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, c.w), min(y+h, c.h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.blend(px, py, col)
		}
	}
}

// FillEllipse fills a rotated ellipse centered at (cx, cy) with radii
// (rx, ry) and rotation rot in radians.
func (c *Canvas) FillEllipse(cx, cy, rx, ry, rot float64, col color.NRGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	// Bounding radius of the rotated ellipse.
	r := gomath.Max(rx, ry)
	x0 := max(int(cx-r)-1, 0)
	y0 := max(int(cy-r)-1, 0)
	x1 := min(int(cx+r)+2, c.w)
	y1 := min(int(cy+r)+2, c.h)

	cos := gomath.Cos(-rot)
	sin := gomath.Sin(-rot)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			dx := float64(px) + 0.5 - cx
			dy := float64(py) + 0.5 - cy
			// Rotate the sample into ellipse space.
			ex := (dx*cos - dy*sin) / rx
			ey := (dx*sin + dy*cos) / ry
			if ex*ex+ey*ey <= 1 {
				c.blend(px, py, col)
			}
		}
	}
}

// StrokePolyline draws line segments between consecutive points with the
// given width.
func (c *Canvas) StrokePolyline(pts [][2]float64, width float64, col color.NRGBA) {
	for i := 0; i+1 < len(pts); i++ {
		c.strokeSegment(pts[i], pts[i+1], width, col)
	}
}

func (c *Canvas) strokeSegment(a, b [2]float64, width float64, col color.NRGBA) {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	length := gomath.Hypot(dx, dy)
	if length == 0 {
		return
	}
	steps := int(length) + 1
	half := width / 2
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := a[0] + t*dx
		py := a[1] + t*dy
		x0 := max(int(px-half), 0)
		y0 := max(int(py-half), 0)
		x1 := min(int(px+half)+1, c.w)
		y1 := min(int(py+half)+1, c.h)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				c.setPixel(x, y, col)
			}
		}
	}
}

// setPixel writes a pixel verbatim, used by stroking so overlapping stamp
// passes do not darken.
func (c *Canvas) setPixel(x, y int, col color.NRGBA) {
	i := y*c.img.Stride + x*4
	c.img.Pix[i] = col.R
	c.img.Pix[i+1] = col.G
	c.img.Pix[i+2] = col.B
	c.img.Pix[i+3] = col.A
}

// blend source-over composites col onto the pixel at (x, y).
func (c *Canvas) blend(x, y int, col color.NRGBA) {
	if col.A == 255 {
		c.setPixel(x, y, col)
		return
	}
	if col.A == 0 {
		return
	}
	i := y*c.img.Stride + x*4
	sa := uint32(col.A)
	da := uint32(c.img.Pix[i+3])
	ia := 255 - sa
	oa := sa + da*ia/255
	if oa == 0 {
		c.img.Pix[i+3] = 0
		return
	}
	blendCh := func(s, d uint8) uint8 {
		return uint8((uint32(s)*sa*255 + uint32(d)*da*ia) / (oa * 255))
	}
	c.img.Pix[i] = blendCh(col.R, c.img.Pix[i])
	c.img.Pix[i+1] = blendCh(col.G, c.img.Pix[i+1])
	c.img.Pix[i+2] = blendCh(col.B, c.img.Pix[i+2])
	c.img.Pix[i+3] = uint8(oa)
}

func gray(v uint8) color.NRGBA {
	return color.NRGBA{R: v, G: v, B: v, A: 255}
}

func grayAlpha(v, a uint8) color.NRGBA {
	return color.NRGBA{R: v, G: v, B: v, A: a}
}
