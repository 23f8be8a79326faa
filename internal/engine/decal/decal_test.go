package decal

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/garagekit/restyle/pkg/math"
	"github.com/garagekit/restyle/pkg/scenegraph"
)

// quadModel builds a single 4x4 quad in the XY plane facing +Z.
func quadModel() (*scenegraph.Model, *scenegraph.MeshNode) {
	up := math.Vec3{Z: 1}
	mesh := &scenegraph.MeshNode{
		Name: "Body_Panel",
		Geometry: &scenegraph.Geometry{
			Positions: []math.Vec3{
				{X: -2, Y: -2}, {X: 2, Y: -2}, {X: 2, Y: 2}, {X: -2, Y: 2},
			},
			Normals: []math.Vec3{up, up, up, up},
			UVs:     make([]math.Vec2, 4),
			Indices: []uint32{0, 1, 2, 0, 2, 3},
		},
		Materials: []*scenegraph.Material{scenegraph.NewMaterial("Panel")},
		Transform: math.Identity(),
	}
	return scenegraph.NewModel([]*scenegraph.MeshNode{mesh}), mesh
}

func centerHit(mesh *scenegraph.MeshNode) Hit {
	return Hit{Point: math.Vec3{}, Normal: math.Vec3{Z: 1}, Mesh: mesh}
}

func TestPlaceBuildsClippedGeometry(t *testing.T) {
	model, mesh := quadModel()
	p := NewProjector()

	d, err := p.Place(model, centerHit(mesh), Params{Text: "GK", Size: 0.2, Opacity: 0.8})
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if d.Geometry.TriangleCount() == 0 {
		t.Fatal("decal geometry is empty")
	}
	for _, uv := range d.Geometry.UVs {
		if uv.X < -0.001 || uv.X > 1.001 || uv.Y < -0.001 || uv.Y > 1.001 {
			t.Fatalf("UV out of range: %v", uv)
		}
	}
	half := math.Clamp(0.2*model.Radius(), 0.05, 4)
	for _, pos := range d.Geometry.Positions {
		if pos.X < -half-0.001 || pos.X > half+0.001 || pos.Y < -half-0.001 || pos.Y > half+0.001 {
			t.Fatalf("position outside projector box: %v", pos)
		}
	}
	if d.Material.DepthWrite {
		t.Error("decal material must not write depth")
	}
	if d.Material.PolygonOffset >= 0 {
		t.Error("decal material needs a negative polygon offset")
	}
	if !d.Material.Transparent || d.Material.Opacity != 0.8 {
		t.Errorf("decal material opacity = %v transparent = %v", d.Material.Opacity, d.Material.Transparent)
	}
}

func TestPlaceMissesSurface(t *testing.T) {
	model, mesh := quadModel()
	p := NewProjector()

	hit := Hit{Point: math.Vec3{X: 50, Y: 50}, Normal: math.Vec3{Z: 1}, Mesh: mesh}
	if _, err := p.Place(model, hit, Params{Text: "X", Size: 0.1}); !errors.Is(err, ErrNoContact) {
		t.Errorf("err = %v, want ErrNoContact", err)
	}
	if p.Count() != 0 {
		t.Error("failed placement must not leave scene state behind")
	}
}

func TestCapacityEvictsOldestFirst(t *testing.T) {
	model, mesh := quadModel()
	p := NewProjector()

	var first []*Decal
	for i := 0; i < 45; i++ {
		d, err := p.Place(model, centerHit(mesh), Params{Text: "N", Size: 0.2})
		if err != nil {
			t.Fatalf("Place %d: %v", i, err)
		}
		if i < 5 {
			first = append(first, d)
		}
	}

	if p.Count() != Capacity {
		t.Fatalf("live decals = %d, want %d", p.Count(), Capacity)
	}
	for i, d := range first {
		if !d.Geometry.Disposed() {
			t.Errorf("evicted decal %d geometry not disposed", i)
		}
		if !d.Material.ColorMap.Disposed() {
			t.Errorf("evicted decal %d texture not disposed", i)
		}
		if d.Mesh != nil {
			t.Errorf("evicted decal %d still references its mesh", i)
		}
	}
	for _, d := range p.Decals() {
		if d.Geometry.Disposed() {
			t.Error("live decal was disposed")
		}
	}
}

func TestDecalComposesWithModelTransform(t *testing.T) {
	// Same surface point, once with the model at identity and once
	// rotated: the model-local decal geometry must match.
	modelA, meshA := quadModel()
	pA := NewProjector()
	dA, err := pA.Place(modelA, centerHit(meshA), Params{Text: "GK", Size: 0.25})
	if err != nil {
		t.Fatalf("Place A: %v", err)
	}

	modelB, meshB := quadModel()
	modelB.Transform = math.RotateY(0.9)
	pB := NewProjector()
	hitB := Hit{
		Point:  modelB.Transform.TransformPoint(math.Vec3{}),
		Normal: modelB.Transform.TransformDirection(math.Vec3{Z: 1}),
		Mesh:   meshB,
	}
	dB, err := pB.Place(modelB, hitB, Params{Text: "GK", Size: 0.25})
	if err != nil {
		t.Fatalf("Place B: %v", err)
	}

	if len(dA.Geometry.Positions) != len(dB.Geometry.Positions) {
		t.Fatalf("vertex counts differ: %d vs %d", len(dA.Geometry.Positions), len(dB.Geometry.Positions))
	}
	for i := range dA.Geometry.Positions {
		a := dA.Geometry.Positions[i]
		b := dB.Geometry.Positions[i]
		if gomath.Abs(float64(a.X-b.X)) > 1e-4 ||
			gomath.Abs(float64(a.Y-b.Y)) > 1e-4 ||
			gomath.Abs(float64(a.Z-b.Z)) > 1e-4 {
			t.Fatalf("vertex %d differs: %v vs %v", i, a, b)
		}
	}
}

func TestClear(t *testing.T) {
	model, mesh := quadModel()
	p := NewProjector()
	d, err := p.Place(model, centerHit(mesh), Params{Text: "GK", Size: 0.2})
	if err != nil {
		t.Fatalf("Place: %v", err)
	}

	p.Clear()
	if p.Count() != 0 {
		t.Error("Clear must empty the list")
	}
	if !d.Geometry.Disposed() {
		t.Error("Clear must dispose geometry")
	}
}

func TestOpacityClamped(t *testing.T) {
	model, mesh := quadModel()
	p := NewProjector()
	d, err := p.Place(model, centerHit(mesh), Params{Text: "GK", Size: 0.2, Opacity: 7})
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if d.Material.Opacity != 1 {
		t.Errorf("opacity = %v, want clamp to 1", d.Material.Opacity)
	}
}
