// Package decal converts a raycast hit on the model into a bounded,
// disposable sticker mesh. Decals live in model-local space so they stay
// attached when the model's own yaw/scale transform changes, and the decal
// list is hard-capped: the oldest stickers are disposed first.
package decal

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/garagekit/restyle/internal/engine/pattern"
	"github.com/garagekit/restyle/pkg/math"
	"github.com/garagekit/restyle/pkg/scenegraph"
)

// Capacity is the maximum number of live decals. Placement is
// user-triggered and unbounded, so the list needs a hard ceiling.
const Capacity = 40

// ErrNoContact is reported when the projector box does not intersect the
// hit mesh's surface.
var ErrNoContact = errors.New("decal does not touch the surface")

// Params describes one sticker placement request from the UI.
type Params struct {
	Text     string
	Color    scenegraph.Color
	Size     float32 // fraction of the model's bounding-sphere radius
	Rotation float32 // degrees about the surface normal
	Opacity  float32
}

// Hit is the accepted raycast result: a world-space contact point and face
// normal on a mesh of the current model. Misses and non-mesh hits are
// rejected by the caller.
type Hit struct {
	Point  math.Vec3
	Normal math.Vec3
	Mesh   *scenegraph.MeshNode
}

// Decal is one placed sticker: a generated mesh node plus exclusively
// owned geometry and material.
type Decal struct {
	Mesh     *scenegraph.MeshNode
	Geometry *scenegraph.Geometry
	Material *scenegraph.Material
}

// dispose releases everything the decal owns.
func (d *Decal) dispose() {
	d.Geometry.Dispose()
	if d.Material != nil && d.Material.ColorMap != nil {
		d.Material.ColorMap.Dispose()
	}
	d.Mesh = nil
}

// Projector places and manages decals for the current model.
type Projector struct {
	decals []*Decal
}

// NewProjector returns an empty projector.
func NewProjector() *Projector {
	return &Projector{}
}

// Place projects a sticker onto the surface at the hit location. On any
// failure the scene is left untouched.
func (p *Projector) Place(model *scenegraph.Model, hit Hit, params Params) (*Decal, error) {
	if model == nil || hit.Mesh == nil || hit.Mesh.Geometry == nil {
		return nil, errors.New("decal hit without mesh geometry")
	}

	size := sanitize(params.Size, 0.12)
	rotation := sanitize(params.Rotation, 0)
	opacity := math.Clamp(sanitize(params.Opacity, 1), 0.05, 1)

	// Work in model-local space so the decal composes with the model's
	// own transform.
	worldToLocal := model.WorldToLocal()
	localPoint := worldToLocal.TransformPoint(hit.Point)
	localNormal := worldToLocal.TransformDirection(hit.Normal).Normalize()
	if localNormal.Length() == 0 {
		localNormal = math.Vec3{Z: 1}
	}

	// Projector basis: z along the surface normal, x/y spun about it by
	// the requested rotation.
	zAxis := localNormal
	xAxis := zAxis.Perpendicular()
	spin := math.RotateAxis(zAxis, math.Radians(rotation))
	xAxis = spin.TransformDirection(xAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)

	half := math.Clamp(size*model.Radius(), 0.05, 4)
	proj := math.FromBasis(xAxis, yAxis, zAxis, localPoint)
	invProj := proj.Inverse()

	geo := clipBox(hit.Mesh, proj, invProj, half)
	if geo.TriangleCount() == 0 {
		return nil, ErrNoContact
	}

	r, g, b, _ := params.Color.RGBA8()
	img, err := pattern.DecalRaster(params.Text, color.NRGBA{R: r, G: g, B: b, A: 255})
	if err != nil {
		// No orphaned scene state: the clipped geometry was never attached.
		return nil, fmt.Errorf("decal raster: %w", err)
	}

	mat := scenegraph.NewMaterial("decal")
	mat.ColorMap = scenegraph.NewTexture(img)
	mat.Opacity = opacity
	mat.Transparent = true
	mat.DepthWrite = false
	mat.PolygonOffset = -1
	mat.MarkDirty()

	d := &Decal{
		Mesh: &scenegraph.MeshNode{
			Name:      "decal",
			Geometry:  geo,
			Materials: []*scenegraph.Material{mat},
			Transform: math.Identity(),
		},
		Geometry: geo,
		Material: mat,
	}
	p.decals = append(p.decals, d)
	p.evict()
	return d, nil
}

// Decals returns the live decal list, oldest first.
func (p *Projector) Decals() []*Decal {
	return p.decals
}

// Count returns the number of live decals.
func (p *Projector) Count() int {
	return len(p.decals)
}

// Clear disposes every decal. Called on user request and on model swap.
func (p *Projector) Clear() {
	for _, d := range p.decals {
		d.dispose()
	}
	p.decals = nil
}

// evict disposes the oldest decals once the list exceeds Capacity.
func (p *Projector) evict() {
	for len(p.decals) > Capacity {
		p.decals[0].dispose()
		p.decals = p.decals[1:]
	}
}

func sanitize(v, fallback float32) float32 {
	if !math.IsFinite(v) {
		return fallback
	}
	return v
}
