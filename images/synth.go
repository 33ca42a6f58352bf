package images

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/chewxy/math32"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// SolidImage builds a width x height image where every pixel is c.
func SolidImage(width, height int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// CheckerImage builds a width x height image alternating between colors
// a and b in cells of the given size.
func CheckerImage(width, height, cell int, a, b color.RGBA) *image.RGBA {
	if cell < 1 {
		cell = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/cell)+(y/cell))%2 == 0 {
				img.SetRGBA(x, y, a)
			} else {
				img.SetRGBA(x, y, b)
			}
		}
	}
	return img
}

// RadialGradientImage builds a width x height grayscale ramp from black at
// the center to white at the corners.
func RadialGradientImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	cx := float32(width-1) / 2
	cy := float32(height-1) / 2
	max := math32.Hypot(cx, cy)
	if max == 0 {
		max = 1
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			d := math32.Hypot(float32(x)-cx, float32(y)-cy)
			v := uint8(math32.Floor(255*d/max + 0.5))
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// ScaleImage resizes img to width x height. Nearest-neighbor keeps solid
// regions solid, which matters when scaling classification fixtures.
func ScaleImage(img image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(height), img, resize.NearestNeighbor)
}

// WritePNG encodes img to path as PNG.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return errors.Wrapf(err, "failed to encode %s", path)
	}
	return nil
}
