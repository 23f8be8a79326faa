// Package main dumps every wrap pattern at a range of tint stops as
// WebP files, for eyeballing the generators.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"

	"github.com/garagekit/restyle/internal/engine/pattern"
)

var tints = []float32{0, 0.25, 0.5, 0.75, 1}

func main() {
	var (
		outDir = flag.String("out", "patterns", "output directory")
		thumb  = flag.Int("thumb", 0, "also write thumbnails at this edge length (0 disables)")
	)
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(1)
	}

	written := 0
	for _, kind := range pattern.Kinds() {
		for _, tint := range tints {
			img := pattern.Synthesize(kind, tint)
			stem := fmt.Sprintf("%s_%03d", kind, int(tint*100))

			if err := writeWebP(filepath.Join(*outDir, stem+".webp"), img); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(1)
			}
			written++

			if *thumb > 0 {
				small := image.NewNRGBA(image.Rect(0, 0, *thumb, *thumb))
				draw.ApproxBiLinear.Scale(small, small.Bounds(), img, img.Bounds(), draw.Src, nil)
				if err := writeWebP(filepath.Join(*outDir, stem+"_thumb.webp"), small); err != nil {
					fmt.Fprintf(os.Stderr, "%v\n", err)
					os.Exit(1)
				}
				written++
			}
		}
	}
	fmt.Printf("wrote %d images to %s\n", written, *outDir)
}

func writeWebP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
