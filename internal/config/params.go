package config

import (
	"github.com/garagekit/restyle/internal/engine/decal"
	"github.com/garagekit/restyle/internal/engine/look"
	"github.com/garagekit/restyle/internal/engine/pattern"
	"github.com/garagekit/restyle/pkg/scenegraph"
)

// LookParams converts the YAML look description into pipeline parameters.
// Invalid hex colors silently fall back to the pipeline defaults, matching
// the engine's input-normalization rules.
func (c *Config) LookParams() look.Params {
	def := look.Default()
	p := look.Params{
		Paint:             colorOr(c.Look.Paint, def.Paint),
		PreserveOriginals: c.Look.PreserveOriginals,
		Finish:            look.Finish(c.Look.Finish),
		Clearcoat:         c.Look.Clearcoat,
		Wrap: look.WrapParams{
			Enabled:  c.Look.Wrap.Enabled,
			Pattern:  pattern.Kind(c.Look.Wrap.Pattern),
			Color:    colorOr(c.Look.Wrap.Color, def.Wrap.Color),
			Tint:     c.Look.Wrap.Tint,
			Scale:    c.Look.Wrap.Scale,
			Rotation: c.Look.Wrap.Rotation,
			OffsetX:  c.Look.Wrap.OffsetX,
			OffsetY:  c.Look.Wrap.OffsetY,
		},
		Glass: look.GlassParams{
			Enabled: c.Look.Glass.Enabled,
			Tint:    c.Look.Glass.Tint,
		},
		Parts: look.PartColors{
			Wheel:     colorOr(c.Look.Parts.Wheel, def.Parts.Wheel),
			Trim:      colorOr(c.Look.Parts.Trim, def.Parts.Trim),
			Caliper:   colorOr(c.Look.Parts.Caliper, def.Parts.Caliper),
			Light:     colorOr(c.Look.Parts.Light, def.Parts.Light),
			LightGlow: c.Look.Parts.LightGlow,
		},
	}
	return p
}

// DecalParams converts the demo decal section.
func (c *Config) DecalParams() decal.Params {
	return decal.Params{
		Text:     c.Decal.Text,
		Color:    colorOr(c.Decal.Color, scenegraph.Color{R: 1, G: 1, B: 1}),
		Size:     c.Decal.Size,
		Rotation: c.Decal.Rotation,
		Opacity:  c.Decal.Opacity,
	}
}

func colorOr(hex string, fallback scenegraph.Color) scenegraph.Color {
	c, err := scenegraph.ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return c
}
