package plate

import (
	"errors"
	"testing"

	"github.com/garagekit/restyle/pkg/math"
	"github.com/garagekit/restyle/pkg/scenegraph"
)

func plateModel() (*scenegraph.Model, *scenegraph.Material) {
	body := scenegraph.NewMaterial("CarPaint")
	plateMat := scenegraph.NewMaterial("PlateWhite")
	plateMat.BaseColor = scenegraph.Color{R: 0.9, G: 0.9, B: 0.85}

	meshes := []*scenegraph.MeshNode{
		{Name: "Body", Materials: []*scenegraph.Material{body}, Transform: math.Identity()},
		{Name: "LicensePlate_Front", Materials: []*scenegraph.Material{plateMat}, Transform: math.Identity()},
	}
	return scenegraph.NewModel(meshes), plateMat
}

func TestApplyStampsPlate(t *testing.T) {
	model, plateMat := plateModel()
	a := NewApplier()

	if err := a.Apply(model, "ABC123"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if plateMat.ColorMap == nil {
		t.Fatal("plate material should carry the generated texture")
	}
	if plateMat.BaseColor != (scenegraph.Color{R: 1, G: 1, B: 1}) {
		t.Errorf("plate base color = %v, want white", plateMat.BaseColor)
	}
	if !plateMat.Dirty() {
		t.Error("plate material should be marked dirty")
	}
}

func TestRoundTrip(t *testing.T) {
	model, plateMat := plateModel()
	origColor := plateMat.BaseColor
	a := NewApplier()

	if err := a.Apply(model, "ABC123"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	tex := plateMat.ColorMap
	a.Reset()

	if plateMat.BaseColor != origColor {
		t.Errorf("base color after reset = %v, want %v", plateMat.BaseColor, origColor)
	}
	if plateMat.ColorMap != nil {
		t.Error("color map after reset should be the original nil slot")
	}
	if !tex.Disposed() {
		t.Error("generated plate texture must be disposed on reset")
	}
}

func TestEmptyTextEqualsReset(t *testing.T) {
	model, plateMat := plateModel()
	origColor := plateMat.BaseColor
	a := NewApplier()

	if err := a.Apply(model, "XYZ789"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := a.Apply(model, "   "); err != nil {
		t.Fatalf("Apply with blank text: %v", err)
	}
	if plateMat.BaseColor != origColor || plateMat.ColorMap != nil {
		t.Error("blank text must behave exactly like Reset")
	}
}

func TestNotFound(t *testing.T) {
	body := scenegraph.NewMaterial("CarPaint")
	model := scenegraph.NewModel([]*scenegraph.MeshNode{
		{Name: "Body", Materials: []*scenegraph.Material{body}, Transform: math.Identity()},
	})
	a := NewApplier()

	err := a.Apply(model, "ABC123")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if body.ColorMap != nil || body.Dirty() {
		t.Error("a miss must not mutate anything")
	}
}

func TestLocatorRules(t *testing.T) {
	cases := []struct {
		mesh, mat string
		want      bool
	}{
		{"LicensePlate_Front", "", true},
		{"rear_licence_plate", "", true},
		{"Number Plate", "", true},
		{"numberplate01", "", true},
		{"Registration_Rear", "", true},
		{"reg", "", true},
		{"", "PlateSteel", true},
		{"plate_template", "", false},   // excluded
		{"plate_placeholder", "", false}, // excluded
		{"plateau_terrain", "", false},  // excluded
		{"Body", "CarPaint", false},
		{"regulator_mount", "", false}, // \breg must not match inside words
	}
	for _, tc := range cases {
		mat := scenegraph.NewMaterial(tc.mat)
		model := scenegraph.NewModel([]*scenegraph.MeshNode{
			{Name: tc.mesh, Materials: []*scenegraph.Material{mat}, Transform: math.Identity()},
		})
		a := NewApplier()
		a.locate(model)
		if got := len(a.Matched()) > 0; got != tc.want {
			t.Errorf("locate(%q, %q) matched=%v, want %v", tc.mesh, tc.mat, got, tc.want)
		}
	}
}

func TestMatchedListCachedUntilInvalidate(t *testing.T) {
	model, plateMat := plateModel()
	a := NewApplier()

	if err := a.Apply(model, "AAA111"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	// Renaming after the first locate must not change the cached list.
	model.Meshes[1].Name = "renamed"
	if err := a.Apply(model, "BBB222"); err != nil {
		t.Fatalf("second Apply: %v", err)
	}
	if plateMat.ColorMap == nil {
		t.Error("cached plate list should still be used after rename")
	}

	a.Invalidate()
	if err := a.Apply(model, "CCC333"); !errors.Is(err, ErrNotFound) {
		t.Errorf("after Invalidate locate should rerun and miss, got %v", err)
	}
}
