package decal

import (
	"github.com/garagekit/restyle/pkg/math"
	"github.com/garagekit/restyle/pkg/scenegraph"
)

// clipBox clips the mesh's triangles against an oriented box and returns
// the surviving surface as a new geometry in model-local space, with UVs
// spread across the box's XY footprint.
//
// proj maps projector space to model-local space; invProj is its inverse.
// half is the box half-extent on every axis.
func clipBox(mesh *scenegraph.MeshNode, proj, invProj math.Mat4, half float32) *scenegraph.Geometry {
	geo := &scenegraph.Geometry{}
	g := mesh.Geometry
	if g == nil {
		return geo
	}

	triCount := g.TriangleCount()
	for i := 0; i < triCount; i++ {
		a, b, c := g.Triangle(i)
		// Mesh-local -> model-local -> projector space.
		poly := []math.Vec3{
			invProj.TransformPoint(mesh.Transform.TransformPoint(a)),
			invProj.TransformPoint(mesh.Transform.TransformPoint(b)),
			invProj.TransformPoint(mesh.Transform.TransformPoint(c)),
		}

		poly = clipAxis(poly, 0, half)
		poly = clipAxis(poly, 1, half)
		poly = clipAxis(poly, 2, half)
		if len(poly) < 3 {
			continue
		}

		// Face normal in model-local space, from the original corners.
		am := mesh.Transform.TransformPoint(a)
		bm := mesh.Transform.TransformPoint(b)
		cm := mesh.Transform.TransformPoint(c)
		normal := bm.Sub(am).Cross(cm.Sub(am)).Normalize()

		// Fan-triangulate the clipped polygon.
		for j := 1; j+1 < len(poly); j++ {
			appendVertex(geo, poly[0], normal, proj, half)
			appendVertex(geo, poly[j], normal, proj, half)
			appendVertex(geo, poly[j+1], normal, proj, half)
		}
	}
	return geo
}

func appendVertex(geo *scenegraph.Geometry, p math.Vec3, normal math.Vec3, proj math.Mat4, half float32) {
	geo.Positions = append(geo.Positions, proj.TransformPoint(p))
	geo.Normals = append(geo.Normals, normal)
	geo.UVs = append(geo.UVs, math.Vec2{
		X: p.X/(2*half) + 0.5,
		Y: 0.5 - p.Y/(2*half),
	})
}

// clipAxis runs Sutherland-Hodgman against the two planes of one axis.
func clipAxis(poly []math.Vec3, axis int, half float32) []math.Vec3 {
	poly = clipPlane(poly, func(v math.Vec3) float32 { return half - component(v, axis) })
	return clipPlane(poly, func(v math.Vec3) float32 { return component(v, axis) + half })
}

// clipPlane keeps the part of the polygon where dist >= 0.
func clipPlane(poly []math.Vec3, dist func(math.Vec3) float32) []math.Vec3 {
	if len(poly) == 0 {
		return poly
	}
	out := make([]math.Vec3, 0, len(poly)+1)
	for i := range poly {
		cur := poly[i]
		next := poly[(i+1)%len(poly)]
		dc := dist(cur)
		dn := dist(next)

		if dc >= 0 {
			out = append(out, cur)
		}
		// Edge crosses the plane: emit the intersection point.
		if (dc >= 0) != (dn >= 0) {
			t := dc / (dc - dn)
			out = append(out, cur.Lerp(next, t))
		}
	}
	return out
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
