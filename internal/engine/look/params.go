// Package look orchestrates the restore-then-apply styling pass: paint,
// finish, procedural wrap, glass tint and per-part colors over a model's
// deduplicated material list.
package look

import (
	"github.com/garagekit/restyle/internal/engine/pattern"
	"github.com/garagekit/restyle/pkg/math"
	"github.com/garagekit/restyle/pkg/scenegraph"
)

// Finish selects one of the fixed paint finish presets.
type Finish string

// Finish presets.
const (
	FinishGloss Finish = "gloss"
	FinishSatin Finish = "satin"
	FinishMatte Finish = "matte"
)

// finishSurface returns the (roughness, metalness) pair for a finish.
// Unknown finishes read as gloss.
func finishSurface(f Finish) (roughness, metalness float32) {
	switch f {
	case FinishSatin:
		return 0.48, 0.14
	case FinishMatte:
		return 0.92, 0.08
	default:
		return 0.18, 0.14
	}
}

// WrapParams configures the procedural wrap layer.
type WrapParams struct {
	Enabled  bool
	Pattern  pattern.Kind
	Color    scenegraph.Color
	Tint     float32
	Scale    float32
	Rotation float32 // degrees
	OffsetX  float32
	OffsetY  float32
}

// GlassParams configures the glass tint layer.
type GlassParams struct {
	Enabled bool
	Tint    float32
}

// PartColors configures the per-part recolor layer. A zero-value color
// leaves that part at its baseline.
type PartColors struct {
	Wheel     scenegraph.Color
	Trim      scenegraph.Color
	Caliper   scenegraph.Color
	Light     scenegraph.Color
	LightGlow float32
}

// Params is the full, immutable look description arriving from the UI
// layer. Numeric fields are never trusted; Clamped sanitizes everything
// before the pipeline touches a material.
type Params struct {
	Paint             scenegraph.Color
	PreserveOriginals bool
	Finish            Finish
	Clearcoat         float32
	Wrap              WrapParams
	Glass             GlassParams
	Parts             PartColors
}

// Default returns the out-of-the-box look.
func Default() Params {
	return Params{
		Paint:     scenegraph.Color{R: 0.78, G: 0.09, B: 0.11},
		Finish:    FinishGloss,
		Clearcoat: 0.6,
		Wrap: WrapParams{
			Pattern: pattern.Stripes,
			Color:   scenegraph.Color{R: 0.92, G: 0.92, B: 0.94},
			Tint:    0.5,
			Scale:   3,
		},
		Glass: GlassParams{Tint: 0.4},
		Parts: PartColors{
			Wheel:     scenegraph.Color{R: 0.12, G: 0.12, B: 0.13},
			Trim:      scenegraph.Color{R: 0.25, G: 0.26, B: 0.28},
			Caliper:   scenegraph.Color{R: 0.82, G: 0.12, B: 0.1},
			Light:     scenegraph.Color{R: 1, G: 0.97, B: 0.9},
			LightGlow: 1,
		},
	}
}

// Clamped returns a copy with every numeric field forced into its valid
// range. NaN and infinite values fall back to the defaults.
func (p Params) Clamped() Params {
	def := Default()

	p.Clearcoat = sanitize(p.Clearcoat, def.Clearcoat, 0, 1)
	if !p.Wrap.Pattern.Valid() {
		p.Wrap.Pattern = def.Wrap.Pattern
	}
	p.Wrap.Tint = sanitize(p.Wrap.Tint, def.Wrap.Tint, 0, 1)
	p.Wrap.Scale = sanitize(p.Wrap.Scale, def.Wrap.Scale, 0.05, 32)
	p.Wrap.Rotation = sanitize(p.Wrap.Rotation, 0, -360, 360)
	p.Wrap.OffsetX = sanitize(p.Wrap.OffsetX, 0, -8, 8)
	p.Wrap.OffsetY = sanitize(p.Wrap.OffsetY, 0, -8, 8)
	p.Glass.Tint = sanitize(p.Glass.Tint, def.Glass.Tint, 0, 1)
	p.Parts.LightGlow = sanitize(p.Parts.LightGlow, def.Parts.LightGlow, 0, 6)
	return p
}

func sanitize(v, fallback, lo, hi float32) float32 {
	if !math.IsFinite(v) {
		v = fallback
	}
	return math.Clamp(v, lo, hi)
}
