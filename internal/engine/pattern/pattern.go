package pattern

import (
	"image"
	gomath "math"
	"math/rand"
)

// Kind selects one of the seven wrap patterns.
type Kind string

// Pattern kinds.
const (
	Solid   Kind = "solid"
	Stripes Kind = "stripes"
	Checker Kind = "checker"
	Carbon  Kind = "carbon"
	Camo    Kind = "camo"
	Hex     Kind = "hex"
	Race    Kind = "race"
)

// CanvasSize is the fixed edge length of every generated wrap raster.
const CanvasSize = 512

// Kinds lists every pattern in display order.
func Kinds() []Kind {
	return []Kind{Solid, Stripes, Checker, Carbon, Camo, Hex, Race}
}

// Valid reports whether k names a known pattern.
func (k Kind) Valid() bool {
	switch k {
	case Solid, Stripes, Checker, Carbon, Camo, Hex, Race:
		return true
	}
	return false
}

const lightTone = 255

// darkTone derives the dark tone from the tint contrast factor.
func darkTone(tint float32) uint8 {
	return uint8(gomath.Round(255 * (1 - 0.45*float64(tint))))
}

// Synthesize renders a tileable CanvasSize×CanvasSize raster of the given
// pattern. tint in [0, 1] controls the contrast between the light and dark
// tone; unknown kinds fall back to a solid fill. Camo reseeds on every
// call, so two camo wraps never repeat.
func Synthesize(kind Kind, tint float32) *image.NRGBA {
	if tint < 0 {
		tint = 0
	} else if tint > 1 {
		tint = 1
	}

	c := NewCanvas(CanvasSize)
	c.Fill(gray(lightTone))
	dark := darkTone(tint)
	t := float64(tint)

	switch kind {
	case Stripes:
		drawStripes(c, t, dark)
	case Checker:
		drawChecker(c, t, dark)
	case Carbon:
		drawCarbon(c, t, dark)
	case Camo:
		drawCamo(c, t, dark, rand.Int63())
	case Hex:
		drawHex(c, t, dark)
	case Race:
		drawRace(c, t, dark)
	}
	return c.Image()
}

// drawStripes fills alternating vertical bars. The run starts half a bar
// left of the canvas so a light bar straddles the wrap seam.
func drawStripes(c *Canvas, t float64, dark uint8) {
	width := int(gomath.Max(6, gomath.Round(36-16*t)))
	period := 2 * width
	for x := width/2 - period; x < CanvasSize+period; x += period {
		c.FillRect(x+width, 0, width, CanvasSize, gray(dark))
	}
}

func drawChecker(c *Canvas, t float64, dark uint8) {
	cell := int(gomath.Max(12, gomath.Round(52-22*t)))
	for y := 0; y < CanvasSize; y += cell {
		for x := 0; x < CanvasSize; x += cell {
			if (x/cell+y/cell)%2 == 1 {
				c.FillRect(x, y, cell, cell, gray(dark))
			}
		}
	}
}

// drawCarbon lays horizontal dark bands, then half-transparent vertical
// bands over them to fake a woven weft.
func drawCarbon(c *Canvas, t float64, dark uint8) {
	step := int(gomath.Max(6, gomath.Round(18-8*t)))
	band := int(gomath.Max(1, gomath.Round(0.4*float64(step))))
	for y := 0; y < CanvasSize; y += step {
		c.FillRect(0, y, CanvasSize, band, gray(dark))
	}
	weftAlphaF := 255 * 0.55
	weftAlpha := uint8(weftAlphaF)
	for x := 0; x < CanvasSize; x += step {
		c.FillRect(x, 0, band, CanvasSize, grayAlpha(dark, weftAlpha))
	}
}

func drawCamo(c *Canvas, t float64, dark uint8, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	blobs := int(gomath.Round(28 + 40*t))
	for i := 0; i < blobs; i++ {
		cx := rng.Float64() * CanvasSize
		cy := rng.Float64() * CanvasSize
		r := (0.05 + rng.Float64()*0.18) * CanvasSize
		aspect := 0.6 + rng.Float64()*0.6
		rot := rng.Float64() * gomath.Pi
		// Keep blobs at least 40% of the way toward the dark tone so
		// they stay visible on the light ground.
		mix := 0.4 + rng.Float64()*0.6
		tone := uint8(gomath.Round(lightTone + mix*(float64(dark)-lightTone)))
		c.FillEllipse(cx, cy, r, r*aspect, rot, gray(tone))
	}
}

// drawHex strokes a honeycomb of pointy-top hexagons; odd rows shift by
// 1.5×radius so the cells interlock.
func drawHex(c *Canvas, t float64, dark uint8) {
	radius := gomath.Max(10, gomath.Round(26-10*t))
	lineW := gomath.Max(1, gomath.Round(2+t))

	rowH := radius * gomath.Sqrt(3) / 2
	row := 0
	for cy := -rowH; cy < CanvasSize+2*rowH; cy += rowH {
		offset := 0.0
		if row%2 == 1 {
			offset = 1.5 * radius
		}
		for cx := -3 * radius; cx < CanvasSize+3*radius; cx += 3 * radius {
			strokeHexagon(c, cx+offset, cy, radius, lineW, dark)
		}
		row++
	}
}

func strokeHexagon(c *Canvas, cx, cy, r, lineW float64, dark uint8) {
	pts := make([][2]float64, 7)
	for i := 0; i <= 6; i++ {
		a := gomath.Pi / 3 * float64(i)
		pts[i] = [2]float64{cx + r*gomath.Cos(a), cy + r*gomath.Sin(a)}
	}
	c.StrokePolyline(pts, lineW, gray(dark))
}

// drawRace draws the classic twin racing stripes, centered at 55% of the
// canvas width.
func drawRace(c *Canvas, t float64, dark uint8) {
	width := int(gomath.Max(18, gomath.Round(70-28*t)))
	gap := int(gomath.Max(10, gomath.Round(28-10*t)))
	centerF := 0.55 * CanvasSize
	center := int(centerF)
	c.FillRect(center-gap/2-width, 0, width, CanvasSize, gray(dark))
	c.FillRect(center+gap/2, 0, width, CanvasSize, gray(dark))
}
