// Package demo builds a small programmatic car model with realistically
// messy mesh and material names, standing in for the external loader in
// the CLI tools and tests.
package demo

import (
	"github.com/garagekit/restyle/pkg/math"
	"github.com/garagekit/restyle/pkg/scenegraph"
)

// BuildCar assembles the demo vehicle. Wheel rims share one material and
// tires another, the way real exports usually arrive.
func BuildCar() *scenegraph.Model {
	body := scenegraph.NewMaterial("CarPaint_Metallic")
	body.BaseColor = scenegraph.Color{R: 0.55, G: 0.57, B: 0.6}
	body.Clearcoat = &scenegraph.ClearcoatParams{Amount: 0.4, Roughness: 0.1}

	glass := scenegraph.NewMaterial("Glass_Clear")
	glass.BaseColor = scenegraph.Color{R: 0.85, G: 0.9, B: 0.92}
	glass.Opacity = 0.55
	glass.Transparent = true
	glass.Transmission = &scenegraph.TransmissionParams{Transmission: 0.9, Thickness: 0.05, IOR: 1.5}

	rim := scenegraph.NewMaterial("Alloy_Silver")
	rim.Metalness = 0.9
	rim.Roughness = 0.25

	tire := scenegraph.NewMaterial("Tire_Rubber")
	tire.BaseColor = scenegraph.Color{R: 0.05, G: 0.05, B: 0.05}
	tire.Roughness = 0.95

	caliper := scenegraph.NewMaterial("Caliper_Paint")
	caliper.BaseColor = scenegraph.Color{R: 0.4, G: 0.4, B: 0.42}

	lamp := scenegraph.NewMaterial("Lamp_Lens")
	lamp.EmissiveColor = scenegraph.Color{R: 1, G: 1, B: 1}
	lamp.EmissiveIntensity = 0.2

	chrome := scenegraph.NewMaterial("Chrome_Trim")
	chrome.Metalness = 1
	chrome.Roughness = 0.05

	plateMat := scenegraph.NewMaterial("Plate_Blank")
	plateMat.BaseColor = scenegraph.Color{R: 0.92, G: 0.93, B: 0.9}

	meshes := []*scenegraph.MeshNode{
		boxMesh("Body_Paint", body, math.Vec3{}, math.Vec3{X: 2, Y: 0.7, Z: 4.4}),
		boxMesh("Cabin_Glass_Windshield", glass, math.Vec3{Y: 0.9, Z: 0.6}, math.Vec3{X: 1.7, Y: 0.5, Z: 1.8}),
	}

	wheelAt := func(suffix string, x, z float32) {
		pos := math.Vec3{X: x, Y: -0.4, Z: z}
		meshes = append(meshes,
			boxMesh("Wheel_Rim_"+suffix, rim, pos, math.Vec3{X: 0.25, Y: 0.62, Z: 0.62}),
			boxMesh("Wheel_Tire_"+suffix, tire, pos, math.Vec3{X: 0.32, Y: 0.7, Z: 0.7}),
			boxMesh("Brake_Caliper_"+suffix, caliper, pos, math.Vec3{X: 0.1, Y: 0.2, Z: 0.2}),
		)
	}
	wheelAt("FL", -1.05, 1.45)
	wheelAt("FR", 1.05, 1.45)
	wheelAt("RL", -1.05, -1.45)
	wheelAt("RR", 1.05, -1.45)

	meshes = append(meshes,
		boxMesh("HeadLight_L", lamp, math.Vec3{X: -0.7, Y: 0.15, Z: 2.2}, math.Vec3{X: 0.4, Y: 0.18, Z: 0.1}),
		boxMesh("HeadLight_R", lamp, math.Vec3{X: 0.7, Y: 0.15, Z: 2.2}, math.Vec3{X: 0.4, Y: 0.18, Z: 0.1}),
		boxMesh("Grille_Chrome", chrome, math.Vec3{Y: 0, Z: 2.21}, math.Vec3{X: 0.9, Y: 0.25, Z: 0.05}),
		boxMesh("Mirror_L", chrome, math.Vec3{X: -1.1, Y: 0.6, Z: 0.9}, math.Vec3{X: 0.2, Y: 0.12, Z: 0.15}),
		boxMesh("Mirror_R", chrome, math.Vec3{X: 1.1, Y: 0.6, Z: 0.9}, math.Vec3{X: 0.2, Y: 0.12, Z: 0.15}),
		boxMesh("LicensePlate_Rear", plateMat, math.Vec3{Y: -0.1, Z: -2.21}, math.Vec3{X: 0.52, Y: 0.13, Z: 0.02}),
	)

	return scenegraph.NewModel(meshes)
}

// boxMesh builds an axis-aligned box of the given half-extents centered at
// pos, with outward per-face normals.
func boxMesh(name string, mat *scenegraph.Material, pos, half math.Vec3) *scenegraph.MeshNode {
	type face struct {
		normal     math.Vec3
		a, b, c, d math.Vec3
	}
	x, y, z := half.X, half.Y, half.Z
	faces := []face{
		{math.Vec3{Z: 1}, math.Vec3{X: -x, Y: -y, Z: z}, math.Vec3{X: x, Y: -y, Z: z}, math.Vec3{X: x, Y: y, Z: z}, math.Vec3{X: -x, Y: y, Z: z}},
		{math.Vec3{Z: -1}, math.Vec3{X: x, Y: -y, Z: -z}, math.Vec3{X: -x, Y: -y, Z: -z}, math.Vec3{X: -x, Y: y, Z: -z}, math.Vec3{X: x, Y: y, Z: -z}},
		{math.Vec3{X: 1}, math.Vec3{X: x, Y: -y, Z: z}, math.Vec3{X: x, Y: -y, Z: -z}, math.Vec3{X: x, Y: y, Z: -z}, math.Vec3{X: x, Y: y, Z: z}},
		{math.Vec3{X: -1}, math.Vec3{X: -x, Y: -y, Z: -z}, math.Vec3{X: -x, Y: -y, Z: z}, math.Vec3{X: -x, Y: y, Z: z}, math.Vec3{X: -x, Y: y, Z: -z}},
		{math.Vec3{Y: 1}, math.Vec3{X: -x, Y: y, Z: z}, math.Vec3{X: x, Y: y, Z: z}, math.Vec3{X: x, Y: y, Z: -z}, math.Vec3{X: -x, Y: y, Z: -z}},
		{math.Vec3{Y: -1}, math.Vec3{X: -x, Y: -y, Z: -z}, math.Vec3{X: x, Y: -y, Z: -z}, math.Vec3{X: x, Y: -y, Z: z}, math.Vec3{X: -x, Y: -y, Z: z}},
	}

	geo := &scenegraph.Geometry{}
	for _, f := range faces {
		base := uint32(len(geo.Positions))
		geo.Positions = append(geo.Positions, f.a, f.b, f.c, f.d)
		geo.Normals = append(geo.Normals, f.normal, f.normal, f.normal, f.normal)
		geo.UVs = append(geo.UVs,
			math.Vec2{}, math.Vec2{X: 1}, math.Vec2{X: 1, Y: 1}, math.Vec2{Y: 1})
		geo.Indices = append(geo.Indices, base, base+1, base+2, base, base+2, base+3)
	}

	return &scenegraph.MeshNode{
		Name:      name,
		Geometry:  geo,
		Materials: []*scenegraph.Material{mat},
		Transform: math.Translate(pos.X, pos.Y, pos.Z),
	}
}
