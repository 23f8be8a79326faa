package scenegraph

import "github.com/garagekit/restyle/pkg/math"

// Geometry holds triangle data in mesh-local coordinates.
type Geometry struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	UVs       []math.Vec2
	Indices   []uint32

	disposed bool
}

// TriangleCount returns the number of triangles.
func (g *Geometry) TriangleCount() int {
	if g == nil {
		return 0
	}
	if len(g.Indices) > 0 {
		return len(g.Indices) / 3
	}
	return len(g.Positions) / 3
}

// Triangle returns the three corner positions of triangle i.
func (g *Geometry) Triangle(i int) (a, b, c math.Vec3) {
	if len(g.Indices) > 0 {
		return g.Positions[g.Indices[i*3]],
			g.Positions[g.Indices[i*3+1]],
			g.Positions[g.Indices[i*3+2]]
	}
	return g.Positions[i*3], g.Positions[i*3+1], g.Positions[i*3+2]
}

// Dispose releases the vertex data. Safe to call more than once.
func (g *Geometry) Dispose() {
	if g == nil || g.disposed {
		return
	}
	g.disposed = true
	g.Positions = nil
	g.Normals = nil
	g.UVs = nil
	g.Indices = nil
}

// Disposed reports whether Dispose has been called.
func (g *Geometry) Disposed() bool {
	return g != nil && g.disposed
}

// MeshNode is one renderable surface of the loaded model. Its name is
// free-form loader output and may be empty or ambiguous; the transform
// maps mesh-local coordinates into model-local space.
type MeshNode struct {
	Name      string
	Geometry  *Geometry
	Materials []*Material
	Transform math.Mat4
}
