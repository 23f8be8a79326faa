package pattern

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// PlateTextLimit is the maximum number of characters stamped on a plate.
const PlateTextLimit = 10

var (
	fontOnce sync.Once
	fontErr  error
	boldFont *opentype.Font
	regFont  *opentype.Font
)

func loadFonts() error {
	fontOnce.Do(func() {
		boldFont, fontErr = opentype.Parse(gobold.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("parse bold font: %w", fontErr)
			return
		}
		regFont, fontErr = opentype.Parse(goregular.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("parse regular font: %w", fontErr)
		}
	})
	return fontErr
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// drawTextCentered draws s horizontally centered at cx with the text
// baseline at y.
func drawTextCentered(dst *image.NRGBA, s string, cx, y int, face font.Face, col color.NRGBA) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
	}
	w := d.MeasureString(s)
	d.Dot = fixed.P(cx, y).Sub(fixed.Point26_6{X: w / 2})
	d.DrawString(s)
}

// PlateRaster renders a license-plate face: plate ground, double border,
// brand microtext and the registration text in a large bold font. The text
// is uppercased and truncated to PlateTextLimit characters.
func PlateRaster(text string) (*image.NRGBA, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}

	text = strings.ToUpper(strings.TrimSpace(text))
	if r := []rune(text); len(r) > PlateTextLimit {
		text = string(r[:PlateTextLimit])
	}

	const w, h = 512, 256
	c := NewCanvasRect(w, h)

	ground := color.NRGBA{R: 245, G: 246, B: 248, A: 255}
	border := color.NRGBA{R: 24, G: 32, B: 48, A: 255}
	ink := color.NRGBA{R: 18, G: 22, B: 32, A: 255}

	c.Fill(ground)
	// Outer and inner border rings.
	frame := func(inset, thick int) {
		c.FillRect(inset, inset, w-2*inset, thick, border)
		c.FillRect(inset, h-inset-thick, w-2*inset, thick, border)
		c.FillRect(inset, inset, thick, h-2*inset, border)
		c.FillRect(w-inset-thick, inset, thick, h-2*inset, border)
	}
	frame(6, 6)
	frame(18, 2)

	microFace, err := newFace(regFont, 22)
	if err != nil {
		return nil, fmt.Errorf("plate micro face: %w", err)
	}
	defer microFace.Close()
	drawTextCentered(c.img, "GARAGEKIT • CUSTOM REGISTRY", w/2, 48, microFace, border)

	mainFace, err := newFace(boldFont, 118)
	if err != nil {
		return nil, fmt.Errorf("plate main face: %w", err)
	}
	defer mainFace.Close()
	drawTextCentered(c.img, text, w/2, 185, mainFace, ink)

	return c.img, nil
}

// DecalRaster renders a sticker: translucent light backing, thin border,
// corner microtext and the decal text in the requested color.
func DecalRaster(text string, col color.NRGBA) (*image.NRGBA, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		text = "★"
	}

	const w, h = 512, 256
	c := NewCanvasRect(w, h)

	// Fully transparent ground; the backing plate floats inside it so the
	// projected sticker has soft margins.
	c.Fill(color.NRGBA{})
	backing := color.NRGBA{R: 255, G: 255, B: 255, A: 90}
	c.FillRect(10, 10, w-20, h-20, backing)

	border := col
	border.A = 220
	c.FillRect(10, 10, w-20, 4, border)
	c.FillRect(10, h-14, w-20, 4, border)
	c.FillRect(10, 10, 4, h-20, border)
	c.FillRect(w-14, 10, 4, h-20, border)

	microFace, err := newFace(regFont, 18)
	if err != nil {
		return nil, fmt.Errorf("decal micro face: %w", err)
	}
	defer microFace.Close()
	micro := col
	micro.A = 200
	drawTextCentered(c.img, "GK", 38, 40, microFace, micro)

	size := mainDecalSize(text)
	mainFace, err := newFace(boldFont, size)
	if err != nil {
		return nil, fmt.Errorf("decal main face: %w", err)
	}
	defer mainFace.Close()
	ink := col
	ink.A = 255
	drawTextCentered(c.img, text, w/2, h/2+int(size/3), mainFace, ink)

	return c.img, nil
}

// mainDecalSize shrinks the font for long decal strings so they stay
// inside the backing.
func mainDecalSize(text string) float64 {
	n := len([]rune(text))
	switch {
	case n <= 6:
		return 110
	case n <= 12:
		return 72
	case n <= 20:
		return 48
	default:
		return 34
	}
}
