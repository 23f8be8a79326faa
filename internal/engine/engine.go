// Package engine is the facade over the styling core: it owns the
// per-model caches (look baselines, plate state, decal list), routes UI
// requests to the pipeline, applier and projector, and turns their soft
// failures into transient status messages.
package engine

import (
	"errors"

	"go.uber.org/zap"

	"github.com/garagekit/restyle/internal/engine/decal"
	"github.com/garagekit/restyle/internal/engine/look"
	"github.com/garagekit/restyle/internal/engine/picking"
	"github.com/garagekit/restyle/internal/engine/plate"
	"github.com/garagekit/restyle/internal/engine/snapshot"
	"github.com/garagekit/restyle/pkg/scenegraph"
)

// Engine is the single entry point the UI talks to. All methods run to
// completion on the calling goroutine; the host invokes them from
// discrete UI events, one at a time.
type Engine struct {
	log *zap.Logger

	model     *scenegraph.Model
	baselines *snapshot.Store
	pipeline  *look.Pipeline
	plates    *plate.Applier
	decals    *decal.Projector

	status string
}

// New returns an engine with no model attached.
func New(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	store := snapshot.NewStore()
	return &Engine{
		log:       log,
		baselines: store,
		pipeline:  look.NewPipeline(store),
		plates:    plate.NewApplier(),
		decals:    decal.NewProjector(),
	}
}

// OnModelSwap clears every per-model cache and adopts the new model. Must
// be called before any other operation touches the new mesh graph; the
// old model's snapshots, plate state and decals are dropped here, exactly
// once.
func (e *Engine) OnModelSwap(model *scenegraph.Model) {
	e.decals.Clear()
	e.plates.Invalidate()
	e.pipeline.Reset(e.model)
	e.baselines.Clear()
	e.status = ""
	e.model = model

	if model != nil {
		e.log.Info("model attached",
			zap.Int("meshes", len(model.Meshes)),
			zap.Int("materials", len(model.Materials)),
		)
	}
}

// Model returns the currently attached model, or nil.
func (e *Engine) Model() *scenegraph.Model {
	return e.model
}

// ApplyLook restyles the current model. No-op without a model.
func (e *Engine) ApplyLook(params look.Params) {
	if e.model == nil {
		return
	}
	e.pipeline.Apply(e.model, params)
}

// ApplyPlate stamps registration text on the model's plate surfaces.
// Empty text resets the plate. Failures are soft: logged, surfaced via
// Status, and the previous visual state stays intact.
func (e *Engine) ApplyPlate(text string) {
	if e.model == nil {
		return
	}
	err := e.plates.Apply(e.model, text)
	switch {
	case errors.Is(err, plate.ErrNotFound):
		e.setStatus("plate mesh not found")
	case err != nil:
		e.log.Warn("plate apply failed", zap.Error(err))
		e.setStatus("could not draw plate")
	default:
		e.status = ""
	}
}

// ResetPlate restores the plate surfaces to stock.
func (e *Engine) ResetPlate() {
	e.plates.Reset()
}

// PickSurface casts a ray against the current model and converts the
// nearest crossing into a decal anchor. ok is false when the ray misses
// or no model is attached.
func (e *Engine) PickSurface(r picking.Ray) (decal.Hit, bool) {
	if e.model == nil {
		return decal.Hit{}, false
	}
	hit, ok := picking.CastRay(e.model, r)
	if !ok {
		return decal.Hit{}, false
	}
	return decal.Hit{
		Point:  hit.Point,
		Normal: hit.Normal,
		Mesh:   hit.Mesh,
	}, true
}

// PlaceDecal projects a sticker at the given hit. Returns the placed
// decal, or nil on a soft failure.
func (e *Engine) PlaceDecal(hit decal.Hit, params decal.Params) *decal.Decal {
	if e.model == nil {
		return nil
	}
	d, err := e.decals.Place(e.model, hit, params)
	if err != nil {
		e.log.Warn("decal placement failed", zap.Error(err))
		e.setStatus("decal could not be placed")
		return nil
	}
	e.status = ""
	return d
}

// ClearDecals removes and disposes every placed decal.
func (e *Engine) ClearDecals() {
	e.decals.Clear()
}

// Decals returns the live decal list, oldest first.
func (e *Engine) Decals() []*decal.Decal {
	return e.decals.Decals()
}

// Materials lists every material of the current model, for the inspector.
func (e *Engine) Materials() []*scenegraph.Material {
	if e.model == nil {
		return nil
	}
	return e.model.Materials
}

// TriangleCounts reports per-mesh triangle counts, for the inspector.
func (e *Engine) TriangleCounts() []scenegraph.MeshStats {
	if e.model == nil {
		return nil
	}
	return e.model.TriangleCounts()
}

// Status returns the most recent transient status message, empty when the
// last operation succeeded.
func (e *Engine) Status() string {
	return e.status
}

func (e *Engine) setStatus(msg string) {
	e.status = msg
	e.log.Info("status", zap.String("msg", msg))
}
