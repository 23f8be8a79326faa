// Package picking casts rays against the loaded model to find the surface
// point under the cursor.
package picking

import (
	gomath "math"

	"github.com/garagekit/restyle/pkg/math"
	"github.com/garagekit/restyle/pkg/scenegraph"
)

// Ray is a world-space ray with a normalized direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// Hit is the nearest surface point a ray touched.
type Hit struct {
	Point    math.Vec3 // world space
	Normal   math.Vec3 // world space, unit, faces the ray origin
	Mesh     *scenegraph.MeshNode
	Distance float32
}

type aabb struct {
	min, max math.Vec3
}

// CastRay intersects the ray with every triangle of the model and returns
// the nearest hit. Back faces count; the reported normal is flipped to
// face the ray origin so decals always project onto the visible side.
func CastRay(model *scenegraph.Model, r Ray) (Hit, bool) {
	var best Hit
	found := false

	if model == nil {
		return best, false
	}

	for _, mesh := range model.Meshes {
		g := mesh.Geometry
		if g == nil || g.Disposed() || g.TriangleCount() == 0 {
			continue
		}

		toWorld := model.Transform.Mul(mesh.Transform)
		toLocal := toWorld.Inverse()
		origin := toLocal.TransformPoint(r.Origin)
		// Not renormalized: keeping the transformed length makes the
		// local t parameter interchangeable with the world one.
		dir := toLocal.TransformDirection(r.Direction)

		if box, ok := meshBounds(g); ok {
			if !intersectAABB(origin, dir, box) {
				continue
			}
		}

		for i := 0; i < g.TriangleCount(); i++ {
			a, b, c := g.Triangle(i)
			t, ok := intersectTriangle(origin, dir, a, b, c)
			if !ok || (found && t >= best.Distance) {
				continue
			}

			n := toWorld.TransformDirection(b.Sub(a).Cross(c.Sub(a))).Normalize()
			if n.Dot(r.Direction) > 0 {
				n = n.Scale(-1)
			}

			best = Hit{
				Point:    r.Origin.Add(r.Direction.Scale(t)),
				Normal:   n,
				Mesh:     mesh,
				Distance: t,
			}
			found = true
		}
	}
	return best, found
}

// intersectTriangle is the Moller-Trumbore test. Returns the ray parameter
// of the crossing when the ray pierces the triangle in front of its origin.
func intersectTriangle(origin, dir, a, b, c math.Vec3) (float32, bool) {
	const eps = 1e-7

	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := dir.Cross(e2)
	det := e1.Dot(p)
	if det > -eps && det < eps {
		return 0, false
	}
	inv := 1 / det

	s := origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(e1)
	v := dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := e2.Dot(q) * inv
	if t <= eps {
		return 0, false
	}
	return t, true
}

// intersectAABB is a slab test used to skip whole meshes. dir need not be
// normalized; a ray starting inside the box counts as a hit.
func intersectAABB(origin, dir math.Vec3, box aabb) bool {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		o := component(origin, axis)
		d := component(dir, axis)
		lo := component(box.min, axis)
		hi := component(box.max, axis)

		if d == 0 {
			if o < lo || o > hi {
				return false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}
	return tmax >= tmin && tmax >= 0
}

func meshBounds(g *scenegraph.Geometry) (aabb, bool) {
	if len(g.Positions) == 0 {
		return aabb{}, false
	}
	box := aabb{min: g.Positions[0], max: g.Positions[0]}
	for _, p := range g.Positions[1:] {
		if p.X < box.min.X {
			box.min.X = p.X
		}
		if p.Y < box.min.Y {
			box.min.Y = p.Y
		}
		if p.Z < box.min.Z {
			box.min.Z = p.Z
		}
		if p.X > box.max.X {
			box.max.X = p.X
		}
		if p.Y > box.max.Y {
			box.max.Y = p.Y
		}
		if p.Z > box.max.Z {
			box.max.Z = p.Z
		}
	}
	return box, true
}

func component(v math.Vec3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
