package config

import (
	"path/filepath"
	"testing"

	"github.com/garagekit/restyle/internal/engine/look"
	"github.com/garagekit/restyle/internal/engine/pattern"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Logging.Level != "info" {
		t.Errorf("expected level info, got %s", cfg.Logging.Level)
	}
	if cfg.Look.Finish != "gloss" {
		t.Errorf("expected gloss finish, got %s", cfg.Look.Finish)
	}
	if cfg.Look.Wrap.Scale != 3 {
		t.Errorf("expected wrap scale 3, got %v", cfg.Look.Wrap.Scale)
	}
	if !pattern.Kind(cfg.Look.Wrap.Pattern).Valid() {
		t.Errorf("default wrap pattern %q is not a valid kind", cfg.Look.Wrap.Pattern)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Look.Paint = "#00ff00"
	cfg.Look.Wrap.Enabled = true
	cfg.Plate.Text = "GK 007"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Look.Paint != "#00ff00" || !loaded.Look.Wrap.Enabled || loaded.Plate.Text != "GK 007" {
		t.Errorf("round trip lost values: %+v", loaded.Look)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Look.Finish != Default().Look.Finish {
		t.Error("empty path should return defaults")
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLookParamsHexFallback(t *testing.T) {
	cfg := Default()
	cfg.Look.Paint = "#ff0000"
	cfg.Look.Parts.Wheel = "not-a-color"

	p := cfg.LookParams()
	if p.Paint.R != 1 || p.Paint.G != 0 || p.Paint.B != 0 {
		t.Errorf("paint = %v, want pure red", p.Paint)
	}
	if p.Parts.Wheel != look.Default().Parts.Wheel {
		t.Errorf("invalid wheel hex should fall back to default, got %v", p.Parts.Wheel)
	}
}
