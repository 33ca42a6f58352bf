// Package classify - Categorization of decoded images into uniformity classes.
package classify

import (
	"fmt"

	"github.com/image-triage/go-triage/images"
)

// Label is one of the four mutually exclusive image categories.
type Label string

const (
	// AllBlack means every pixel is pure black.
	AllBlack Label = "all_black"
	// AllWhite means every pixel is pure white.
	AllWhite Label = "all_white"
	// SingleColor means every pixel shares one color or one brightness,
	// strictly between black and white.
	SingleColor Label = "single_color"
	// MixedPixels means the image is not uniform.
	MixedPixels Label = "mixed_pixels"
)

// Result is the outcome of classifying one image. GrayValue is only
// meaningful for SingleColor and is always in 1-254 there.
type Result struct {
	Label     Label
	GrayValue int
}

// String renders the result in the fixed report form consumed downstream.
func (r Result) String() string {
	switch r.Label {
	case AllBlack:
		return "All black"
	case AllWhite:
		return "All white"
	case SingleColor:
		return fmt.Sprintf("Single color (gray value: %d)", r.GrayValue)
	default:
		return "Mixed pixels"
	}
}

// Classify categorizes a decoded grid. It is a pure function: the grid is
// only read, and repeated calls yield the same result.
//
// A byte-for-byte uniform image is classified by its triple: (0,0,0) is all
// black, (255,255,255) is all white, anything else a single color reported
// by luminance. An image whose pixels differ but share one luminance is
// still a single (perceptual) color. RGB identity is checked before
// luminance identity so the reserved black/white labels can only come from
// true extremes. A zero-pixel grid degenerates to mixed pixels.
func Classify(g *images.Grid) Result {
	if g.Empty() {
		return Result{Label: MixedPixels}
	}

	if g.Channels() == 1 {
		return classifyGray(g)
	}
	return classifyColor(g)
}

func classifyGray(g *images.Grid) Result {
	first := g.Sample(0, 0, 0)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Sample(y, x, 0) != first {
				return Result{Label: MixedPixels}
			}
		}
	}

	// A grayscale sample already is the gray value; no luminance pass.
	switch first {
	case 0:
		return Result{Label: AllBlack}
	case 255:
		return Result{Label: AllWhite}
	default:
		return Result{Label: SingleColor, GrayValue: int(first)}
	}
}

func classifyColor(g *images.Grid) Result {
	firstR, firstG, firstB := g.RGB(0, 0)
	firstGray := images.Luminance(firstR, firstG, firstB)

	sameRGB := true
	sameGray := true
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			r, gg, b := g.RGB(y, x)
			if r != firstR || gg != firstG || b != firstB {
				sameRGB = false
			}
			if sameGray && images.Luminance(r, gg, b) != firstGray {
				sameGray = false
			}
			if !sameRGB && !sameGray {
				return Result{Label: MixedPixels}
			}
		}
	}

	if sameRGB {
		return uniformResult(firstR, firstG, firstB)
	}
	// Same brightness everywhere, differing colors.
	return Result{Label: SingleColor, GrayValue: images.NormalizeGray(firstGray)}
}

// uniformResult maps a uniform pixel triple onto its category.
func uniformResult(r, g, b uint8) Result {
	if r == 0 && g == 0 && b == 0 {
		return Result{Label: AllBlack}
	}
	if r == 255 && g == 255 && b == 255 {
		return Result{Label: AllWhite}
	}
	gray := images.NormalizeGray(images.Luminance(r, g, b))
	return Result{Label: SingleColor, GrayValue: gray}
}
