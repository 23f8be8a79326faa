// Package config handles the tool configuration: logging, texture export,
// and the look description applied to the demo model.
package config

// Config holds all tool settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Export  ExportConfig  `yaml:"export"`
	Look    LookConfig    `yaml:"look"`
	Plate   PlateConfig   `yaml:"plate"`
	Decal   DecalConfig   `yaml:"decal"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ExportConfig holds texture export settings.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// LookConfig describes a complete look in user-editable form. Colors are
// hex strings; invalid values silently fall back to the defaults.
type LookConfig struct {
	Paint             string      `yaml:"paint"`
	PreserveOriginals bool        `yaml:"preserve_originals"`
	Finish            string      `yaml:"finish"`
	Clearcoat         float32     `yaml:"clearcoat"`
	Wrap              WrapConfig  `yaml:"wrap"`
	Glass             GlassConfig `yaml:"glass"`
	Parts             PartsConfig `yaml:"parts"`
}

// WrapConfig configures the procedural wrap layer.
type WrapConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Pattern  string  `yaml:"pattern"`
	Color    string  `yaml:"color"`
	Tint     float32 `yaml:"tint"`
	Scale    float32 `yaml:"scale"`
	Rotation float32 `yaml:"rotation"`
	OffsetX  float32 `yaml:"offset_x"`
	OffsetY  float32 `yaml:"offset_y"`
}

// GlassConfig configures the glass tint layer.
type GlassConfig struct {
	Enabled bool    `yaml:"enabled"`
	Tint    float32 `yaml:"tint"`
}

// PartsConfig configures the per-part recolors.
type PartsConfig struct {
	Wheel     string  `yaml:"wheel"`
	Trim      string  `yaml:"trim"`
	Caliper   string  `yaml:"caliper"`
	Light     string  `yaml:"light"`
	LightGlow float32 `yaml:"light_glow"`
}

// PlateConfig holds the registration text stamped on the plate.
type PlateConfig struct {
	Text string `yaml:"text"`
}

// DecalConfig describes the demo decal placed by the CLI.
type DecalConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Text     string  `yaml:"text"`
	Color    string  `yaml:"color"`
	Size     float32 `yaml:"size"`
	Rotation float32 `yaml:"rotation"`
	Opacity  float32 `yaml:"opacity"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Export: ExportConfig{
			Dir: "out",
		},
		Look: LookConfig{
			Paint:     "#c71a1d",
			Finish:    "gloss",
			Clearcoat: 0.6,
			Wrap: WrapConfig{
				Pattern: "stripes",
				Color:   "#ebebf0",
				Tint:    0.5,
				Scale:   3,
			},
			Glass: GlassConfig{Tint: 0.4},
			Parts: PartsConfig{
				Wheel:     "#1f1f21",
				Trim:      "#404347",
				Caliper:   "#d11f1a",
				Light:     "#fff7e6",
				LightGlow: 1,
			},
		},
		Plate: PlateConfig{Text: "RESTYLE"},
		Decal: DecalConfig{
			Text:    "GK",
			Color:   "#ffffff",
			Size:    0.15,
			Opacity: 0.9,
		},
	}
}
