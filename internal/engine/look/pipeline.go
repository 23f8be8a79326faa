package look

import (
	"github.com/garagekit/restyle/internal/engine/classify"
	"github.com/garagekit/restyle/internal/engine/pattern"
	"github.com/garagekit/restyle/internal/engine/snapshot"
	"github.com/garagekit/restyle/pkg/math"
	"github.com/garagekit/restyle/pkg/scenegraph"
)

// glassDark is the target tone glass is blended toward at full tint.
var glassDark = scenegraph.Color{R: 0.07, G: 0.09, B: 0.11}

// Pipeline applies a complete look to a model. Every Apply runs from
// scratch: capture baselines, restore them, then reapply each layer in a
// fixed order. Nothing is incremental, which is what makes repeated calls
// idempotent.
type Pipeline struct {
	snapshots *snapshot.Store

	// Textures created by the previous Apply; disposed at the start of
	// the next one so stale wrap parameters can never leak through.
	generated []*scenegraph.Texture
}

// NewPipeline returns a pipeline recording baselines into store.
func NewPipeline(store *snapshot.Store) *Pipeline {
	return &Pipeline{snapshots: store}
}

// Apply restyles every material of the model according to params.
func (pl *Pipeline) Apply(model *scenegraph.Model, params Params) {
	if model == nil {
		return
	}
	params = params.Clamped()

	// Baselines first, then a full restore. The restore step is what
	// guarantees two identical calls produce identical results.
	for _, m := range model.Materials {
		pl.snapshots.Capture(m)
	}
	for _, m := range model.Materials {
		pl.snapshots.Restore(m)
	}
	pl.disposeGenerated()

	if params.PreserveOriginals {
		return
	}

	tags := aggregateTags(model)

	var wrapTex *scenegraph.Texture
	if params.Wrap.Enabled {
		if img := pattern.Synthesize(params.Wrap.Pattern, params.Wrap.Tint); img != nil {
			wrapTex = scenegraph.NewTexture(img)
			wrapTex.Repeat = math.Vec2{X: params.Wrap.Scale, Y: params.Wrap.Scale}
			wrapTex.Rotation = math.Radians(params.Wrap.Rotation)
			wrapTex.Offset = math.Vec2{X: params.Wrap.OffsetX, Y: params.Wrap.OffsetY}
			pl.generated = append(pl.generated, wrapTex)
		}
	}

	roughness, metalness := finishSurface(params.Finish)

	for _, m := range model.Materials {
		tg := tags[m.ID]
		paintable := !tg.IsWheel && !tg.IsCaliper && !tg.IsGlass && !tg.IsLight &&
			!isTransparent(m)

		if paintable {
			m.BaseColor = params.Paint
			m.Roughness = roughness
			m.Metalness = metalness
			if m.Clearcoat != nil {
				m.Clearcoat.Amount = params.Clearcoat
				m.Clearcoat.Roughness = 0.08
			}
			if params.Wrap.Enabled {
				// Wrap overrides the flat paint; if synthesis was
				// unavailable the wrap color still lands.
				m.BaseColor = params.Wrap.Color
				if wrapTex != nil {
					m.ColorMap = wrapTex
				}
			}
		}

		if params.Glass.Enabled && (tg.IsGlass || isTransparent(m)) {
			applyGlass(m, params.Glass.Tint)
		}

		// Part recolors, in tag precedence order. A zero-value color
		// means "leave this part at its baseline".
		var unset scenegraph.Color
		switch {
		case tg.IsWheel:
			if params.Parts.Wheel != unset {
				m.BaseColor = params.Parts.Wheel
			}
		case tg.IsCaliper:
			if params.Parts.Caliper != unset {
				m.BaseColor = params.Parts.Caliper
			}
		case tg.IsTrim && !tg.IsGlass && !tg.IsLight:
			if params.Parts.Trim != unset {
				m.BaseColor = params.Parts.Trim
			}
		}
		if tg.IsLight && params.Parts.Light != unset {
			m.EmissiveColor = params.Parts.Light
			m.EmissiveIntensity = params.Parts.LightGlow
		}

		m.MarkDirty()
	}
}

// Reset restores every material and drops generated textures. Used on
// model teardown; a user-requested return to stock goes through Apply
// with PreserveOriginals instead.
func (pl *Pipeline) Reset(model *scenegraph.Model) {
	if model != nil {
		for _, m := range model.Materials {
			pl.snapshots.Restore(m)
		}
	}
	pl.disposeGenerated()
}

func (pl *Pipeline) disposeGenerated() {
	for _, t := range pl.generated {
		t.Dispose()
	}
	pl.generated = nil
}

// aggregateTags classifies every (mesh, material) pairing and ORs the
// results per material, since one material may be shared by several
// meshes with different names.
func aggregateTags(model *scenegraph.Model) map[int]classify.PartTags {
	tags := make(map[int]classify.PartTags, len(model.Materials))
	for _, mesh := range model.Meshes {
		for _, m := range mesh.Materials {
			if m == nil {
				continue
			}
			t := classify.Classify(mesh.Name, m.Name)
			prev := tags[m.ID]
			tags[m.ID] = classify.PartTags{
				IsWheel:   prev.IsWheel || t.IsWheel,
				IsCaliper: prev.IsCaliper || t.IsCaliper,
				IsGlass:   prev.IsGlass || t.IsGlass,
				IsLight:   prev.IsLight || t.IsLight,
				IsTrim:    prev.IsTrim || t.IsTrim,
			}
		}
	}
	return tags
}

func isTransparent(m *scenegraph.Material) bool {
	return m.Transparent || m.Opacity < 0.999
}

func applyGlass(m *scenegraph.Material, tint float32) {
	white := scenegraph.Color{R: 1, G: 1, B: 1}
	m.BaseColor = white.Lerp(glassDark, tint)
	m.Roughness = 0.06 + 0.22*tint
	m.Opacity = math.Clamp(1-0.55*tint, 0.35, 1)
	m.Transparent = true
	if m.Transmission != nil {
		m.Transmission.Transmission = math.Clamp(0.95-0.55*tint, 0.15, 0.95)
		m.Transmission.IOR = 1.45
		m.Transmission.Thickness = 0.02
	}
}
