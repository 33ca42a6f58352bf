package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/image-triage/go-triage/images"
)

// Example program to create a synthetic image corpus covering every
// classification category at a few resolutions.
func main() {
	outDir := flag.String("out", "./data", "Directory to write the corpus into")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	base := 64
	resolutions := []int{64, 256, 1024}

	solid := map[string]color.RGBA{
		"black":  {R: 0, G: 0, B: 0, A: 255},
		"white":  {R: 255, G: 255, B: 255, A: 255},
		"gray":   {R: 128, G: 128, B: 128, A: 255},
		"orange": {R: 200, G: 120, B: 40, A: 255},
	}

	count := 0
	for name, c := range solid {
		img := images.SolidImage(base, base, c)
		for _, res := range resolutions {
			path := filepath.Join(*outDir, fmt.Sprintf("%s_%dx%d.png", name, res, res))
			if err := images.WritePNG(path, images.ScaleImage(img, res, res)); err != nil {
				log.Fatalf("Failed to write %s: %v", path, err)
			}
			count++
		}
	}

	checker := images.CheckerImage(base, base, 8,
		color.RGBA{R: 0, G: 0, B: 0, A: 255},
		color.RGBA{R: 255, G: 255, B: 255, A: 255})
	gradient := images.RadialGradientImage(base, base)
	for _, res := range resolutions {
		path := filepath.Join(*outDir, fmt.Sprintf("checker_%dx%d.png", res, res))
		if err := images.WritePNG(path, images.ScaleImage(checker, res, res)); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		path = filepath.Join(*outDir, fmt.Sprintf("gradient_%dx%d.png", res, res))
		if err := images.WritePNG(path, images.ScaleImage(gradient, res, res)); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		count += 2
	}

	fmt.Printf("Wrote %d corpus images to %s\n", count, *outDir)
}
