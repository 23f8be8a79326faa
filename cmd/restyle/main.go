// Package main is the entry point for the restyle tool. It builds the
// bundled demo car, applies the look described by the config file, and
// exports every generated texture as WebP.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"go.uber.org/zap"

	"github.com/garagekit/restyle/internal/config"
	"github.com/garagekit/restyle/internal/demo"
	"github.com/garagekit/restyle/internal/engine"
	"github.com/garagekit/restyle/internal/engine/camera"
	"github.com/garagekit/restyle/internal/logger"
	"github.com/garagekit/restyle/pkg/scenegraph"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML look description (defaults apply when empty)")
		outDir     = flag.String("out", "", "output directory for exported textures (overrides the config)")
		writeCfg   = flag.String("write-config", "", "write the default config to this path and exit")
	)
	flag.Parse()

	if *writeCfg != "" {
		if err := config.Default().SaveTo(*writeCfg); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("wrote", *writeCfg)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.Export.Dir = *outDir
	}

	log, err := logger.New(cfg.Logging.Level, logger.DefaultFileConfig(cfg.Logging.LogFile), true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("=== restyle ===")

	eng := engine.New(log)
	eng.OnModelSwap(demo.BuildCar())

	for _, st := range eng.TriangleCounts() {
		log.Debug("mesh", zap.String("name", st.Name), zap.Int("triangles", st.Triangles))
	}

	eng.ApplyLook(cfg.LookParams())
	eng.ApplyPlate(cfg.Plate.Text)

	if cfg.Decal.Enabled {
		// Aim at the model the way the viewport does: an orbit camera
		// framing the bounding sphere, ray through the view center.
		model := eng.Model()
		cam := camera.NewOrbitCamera(model.Center(), model.Radius())
		if hit, ok := eng.PickSurface(cam.Ray()); ok {
			if d := eng.PlaceDecal(hit, cfg.DecalParams()); d != nil {
				log.Info("decal placed", zap.String("mesh", d.Mesh.Name))
			}
		} else {
			log.Warn("decal ray missed the model")
		}
	}
	if msg := eng.Status(); msg != "" {
		log.Warn(msg)
	}

	n, err := exportTextures(eng, cfg.Export.Dir)
	if err != nil {
		log.Error("texture export failed", zap.Error(err))
		os.Exit(1)
	}
	log.Info("export complete", zap.Int("textures", n), zap.String("dir", cfg.Export.Dir))
}

// exportTextures writes every live generated texture under dir. Material
// color maps come first, then the rasters of the placed decals.
func exportTextures(eng *engine.Engine, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}

	written := 0
	for _, mat := range eng.Materials() {
		if mat.ColorMap == nil || mat.ColorMap.Disposed() {
			continue
		}
		name := fmt.Sprintf("%s.webp", fileSlug(mat.Name))
		if err := writeWebP(filepath.Join(dir, name), mat.ColorMap); err != nil {
			return written, err
		}
		written++
	}
	for i, d := range eng.Decals() {
		if d.Material.ColorMap == nil || d.Material.ColorMap.Disposed() {
			continue
		}
		name := fmt.Sprintf("decal_%02d.webp", i)
		if err := writeWebP(filepath.Join(dir, name), d.Material.ColorMap); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func writeWebP(path string, tex *scenegraph.Texture) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return nativewebp.Encode(f, tex.Image, nil)
}

// fileSlug turns a material name into a safe file name.
func fileSlug(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "material"
	}
	return b.String()
}
