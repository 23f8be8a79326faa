package scenegraph

import "github.com/garagekit/restyle/pkg/math"

// Model is a fully loaded vehicle: an ordered mesh list and a deduplicated
// material list built once at load time. Materials get dense stable IDs
// here; per-material caches key on those IDs and are dropped wholesale
// when the model is replaced.
type Model struct {
	Meshes    []*MeshNode
	Materials []*Material

	// Transform is the model's own yaw/scale placement in world space,
	// driven by external UI sliders.
	Transform math.Mat4

	center math.Vec3
	radius float32
}

// NewModel builds a Model from loader output: dedupes shared materials,
// assigns IDs, and computes the model-local bounding sphere.
func NewModel(meshes []*MeshNode) *Model {
	m := &Model{
		Meshes:    meshes,
		Transform: math.Identity(),
	}

	seen := make(map[*Material]bool)
	for _, mesh := range meshes {
		for _, mat := range mesh.Materials {
			if mat == nil || seen[mat] {
				continue
			}
			seen[mat] = true
			mat.ID = len(m.Materials)
			m.Materials = append(m.Materials, mat)
		}
	}

	m.computeBounds()
	return m
}

// Radius returns the model-local bounding-sphere radius. A degenerate
// model reports 1 so size heuristics stay usable.
func (m *Model) Radius() float32 {
	if m.radius <= 0 {
		return 1
	}
	return m.radius
}

// Center returns the model-local bounding-sphere center.
func (m *Model) Center() math.Vec3 {
	return m.center
}

// WorldToLocal returns the inverse of the model's current transform.
func (m *Model) WorldToLocal() math.Mat4 {
	return m.Transform.Inverse()
}

// TriangleCounts returns per-mesh triangle counts in mesh order, used by
// the inspector's statistics panel.
func (m *Model) TriangleCounts() []MeshStats {
	stats := make([]MeshStats, 0, len(m.Meshes))
	for _, mesh := range m.Meshes {
		stats = append(stats, MeshStats{
			Name:      mesh.Name,
			Triangles: mesh.Geometry.TriangleCount(),
		})
	}
	return stats
}

// MeshStats pairs a mesh name with its triangle count.
type MeshStats struct {
	Name      string
	Triangles int
}

func (m *Model) computeBounds() {
	min := math.Vec3{X: 1e10, Y: 1e10, Z: 1e10}
	max := math.Vec3{X: -1e10, Y: -1e10, Z: -1e10}
	any := false

	for _, mesh := range m.Meshes {
		if mesh.Geometry == nil {
			continue
		}
		for _, p := range mesh.Geometry.Positions {
			wp := mesh.Transform.TransformPoint(p)
			any = true
			if wp.X < min.X {
				min.X = wp.X
			}
			if wp.Y < min.Y {
				min.Y = wp.Y
			}
			if wp.Z < min.Z {
				min.Z = wp.Z
			}
			if wp.X > max.X {
				max.X = wp.X
			}
			if wp.Y > max.Y {
				max.Y = wp.Y
			}
			if wp.Z > max.Z {
				max.Z = wp.Z
			}
		}
	}
	if !any {
		return
	}

	m.center = min.Add(max).Scale(0.5)
	m.radius = max.Sub(min).Length() / 2
}
