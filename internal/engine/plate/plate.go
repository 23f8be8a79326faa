// Package plate stamps registration text onto a model's license-plate
// surface. The plate is found by name heuristics, snapshotted into its own
// baseline namespace, and can always be reset to stock.
package plate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/garagekit/restyle/internal/engine/pattern"
	"github.com/garagekit/restyle/internal/engine/snapshot"
	"github.com/garagekit/restyle/pkg/scenegraph"
)

// ErrNotFound is reported when no surface of the model looks like a
// license plate. A soft condition: surfaced to the user as a status
// message, never a crash.
var ErrNotFound = errors.New("plate surface not found")

var (
	locatorRe = regexp.MustCompile(`(?i)license|licence|number\s*plate|numberplate|plate|registration|reg\b`)
	excludeRe = regexp.MustCompile(`(?i)template|placeholder|plateau`)
)

// Applier owns the plate state for the currently loaded model: the located
// material list (cached on first use), the baseline namespace, and the
// generated plate texture.
type Applier struct {
	baselines *snapshot.Store
	matched   []*scenegraph.Material
	located   bool
	texture   *scenegraph.Texture
}

// NewApplier returns an Applier with an empty baseline namespace.
func NewApplier() *Applier {
	return &Applier{baselines: snapshot.NewStore()}
}

// Apply stamps text onto the plate surfaces. Empty text is equivalent to
// Reset. The matched material list is cached for the model's lifetime.
func (a *Applier) Apply(model *scenegraph.Model, text string) error {
	if model == nil {
		return ErrNotFound
	}
	if strings.TrimSpace(text) == "" {
		a.Reset()
		return nil
	}

	a.locate(model)
	if len(a.matched) == 0 {
		return ErrNotFound
	}

	img, err := pattern.PlateRaster(text)
	if err != nil {
		// Raster unavailable: leave the previous visual state intact.
		return fmt.Errorf("plate raster: %w", err)
	}

	for _, m := range a.matched {
		a.baselines.Capture(m)
	}

	if a.texture != nil {
		a.texture.Dispose()
	}
	a.texture = scenegraph.NewTexture(img)

	for _, m := range a.matched {
		m.ColorMap = a.texture
		// White base so the plate raster is not tinted by the material.
		m.BaseColor = scenegraph.Color{R: 1, G: 1, B: 1}
		m.MarkDirty()
	}
	return nil
}

// Reset restores every matched material to its pre-stamp state and
// disposes the generated texture.
func (a *Applier) Reset() {
	for _, m := range a.matched {
		a.baselines.Restore(m)
	}
	if a.texture != nil {
		a.texture.Dispose()
		a.texture = nil
	}
}

// Invalidate drops all per-model state. Called on model swap.
func (a *Applier) Invalidate() {
	a.matched = nil
	a.located = false
	a.baselines.Clear()
	if a.texture != nil {
		a.texture.Dispose()
		a.texture = nil
	}
}

// Matched returns the located plate materials (for tests and inspection).
func (a *Applier) Matched() []*scenegraph.Material {
	return a.matched
}

func (a *Applier) locate(model *scenegraph.Model) {
	if a.located {
		return
	}
	a.located = true

	seen := make(map[int]bool)
	for _, mesh := range model.Meshes {
		for _, m := range mesh.Materials {
			if m == nil || seen[m.ID] {
				continue
			}
			hay := mesh.Name + " " + m.Name
			if locatorRe.MatchString(hay) && !excludeRe.MatchString(hay) {
				seen[m.ID] = true
				a.matched = append(a.matched, m)
			}
		}
	}
}
