package picking

import (
	"testing"

	"github.com/garagekit/restyle/pkg/math"
	"github.com/garagekit/restyle/pkg/scenegraph"
)

// facing +Z, centered on the mesh-local origin
func quadMesh(name string, size float32, transform math.Mat4) *scenegraph.MeshNode {
	return &scenegraph.MeshNode{
		Name: name,
		Geometry: &scenegraph.Geometry{
			Positions: []math.Vec3{
				{X: -size, Y: -size}, {X: size, Y: -size}, {X: size, Y: size},
				{X: -size, Y: -size}, {X: size, Y: size}, {X: -size, Y: size},
			},
			Normals: []math.Vec3{
				{Z: 1}, {Z: 1}, {Z: 1},
				{Z: 1}, {Z: 1}, {Z: 1},
			},
		},
		Materials: []*scenegraph.Material{scenegraph.NewMaterial(name)},
		Transform: transform,
	}
}

func closeVec(a, b math.Vec3, eps float32) bool {
	return a.Distance(b) <= eps
}

func TestCastRayHitsQuad(t *testing.T) {
	model := scenegraph.NewModel([]*scenegraph.MeshNode{
		quadMesh("panel", 2, math.Identity()),
	})
	ray := Ray{Origin: math.Vec3{Z: 10}, Direction: math.Vec3{Z: -1}}

	hit, ok := CastRay(model, ray)
	if !ok {
		t.Fatal("ray should hit the quad")
	}
	if hit.Mesh.Name != "panel" {
		t.Errorf("hit mesh %q, want panel", hit.Mesh.Name)
	}
	if !closeVec(hit.Point, math.Vec3{}, 1e-5) {
		t.Errorf("hit point %v, want origin", hit.Point)
	}
	if !closeVec(hit.Normal, math.Vec3{Z: 1}, 1e-5) {
		t.Errorf("hit normal %v, want +Z", hit.Normal)
	}
	if hit.Distance < 9.999 || hit.Distance > 10.001 {
		t.Errorf("hit distance %v, want ~10", hit.Distance)
	}
}

func TestCastRayMiss(t *testing.T) {
	model := scenegraph.NewModel([]*scenegraph.MeshNode{
		quadMesh("panel", 1, math.Identity()),
	})
	ray := Ray{Origin: math.Vec3{X: 50, Z: 10}, Direction: math.Vec3{Z: -1}}

	if _, ok := CastRay(model, ray); ok {
		t.Error("ray far off to the side should miss")
	}
}

func TestCastRayNearestWins(t *testing.T) {
	model := scenegraph.NewModel([]*scenegraph.MeshNode{
		quadMesh("far", 2, math.Translate(0, 0, -5)),
		quadMesh("near", 2, math.Translate(0, 0, 3)),
	})
	ray := Ray{Origin: math.Vec3{Z: 10}, Direction: math.Vec3{Z: -1}}

	hit, ok := CastRay(model, ray)
	if !ok {
		t.Fatal("ray should hit")
	}
	if hit.Mesh.Name != "near" {
		t.Errorf("hit mesh %q, want near", hit.Mesh.Name)
	}
}

func TestCastRayBackfaceNormalFlipped(t *testing.T) {
	model := scenegraph.NewModel([]*scenegraph.MeshNode{
		quadMesh("panel", 2, math.Identity()),
	})
	// Approach from behind the quad.
	ray := Ray{Origin: math.Vec3{Z: -10}, Direction: math.Vec3{Z: 1}}

	hit, ok := CastRay(model, ray)
	if !ok {
		t.Fatal("ray should hit from behind")
	}
	if !closeVec(hit.Normal, math.Vec3{Z: -1}, 1e-5) {
		t.Errorf("normal %v should face the ray origin", hit.Normal)
	}
}

func TestCastRayHonorsModelTransform(t *testing.T) {
	model := scenegraph.NewModel([]*scenegraph.MeshNode{
		quadMesh("panel", 2, math.Identity()),
	})
	model.Transform = math.Translate(100, 0, 0)

	miss := Ray{Origin: math.Vec3{Z: 10}, Direction: math.Vec3{Z: -1}}
	if _, ok := CastRay(model, miss); ok {
		t.Error("ray at the old position should miss the moved model")
	}

	hitRay := Ray{Origin: math.Vec3{X: 100, Z: 10}, Direction: math.Vec3{Z: -1}}
	hit, ok := CastRay(model, hitRay)
	if !ok {
		t.Fatal("ray should hit the moved model")
	}
	if !closeVec(hit.Point, math.Vec3{X: 100}, 1e-4) {
		t.Errorf("hit point %v, want {100 0 0}", hit.Point)
	}
}

func TestCastRayNilModel(t *testing.T) {
	if _, ok := CastRay(nil, Ray{Direction: math.Vec3{Z: -1}}); ok {
		t.Error("nil model should never report a hit")
	}
}
