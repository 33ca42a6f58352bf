package images

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolidImage_Uniform(t *testing.T) {
	img := SolidImage(4, 3, color.RGBA{R: 7, G: 8, B: 9, A: 255})
	g := FromImage(img)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			r, gg, b := g.RGB(y, x)
			assert.Equal(t, [3]uint8{7, 8, 9}, [3]uint8{r, gg, b})
		}
	}
}

func TestCheckerImage_Alternates(t *testing.T) {
	a := color.RGBA{A: 255}
	b := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	img := CheckerImage(4, 4, 1, a, b)

	g := FromImage(img)
	r0, _, _ := g.RGB(0, 0)
	r1, _, _ := g.RGB(0, 1)
	assert.Equal(t, uint8(0), r0)
	assert.Equal(t, uint8(255), r1)
}

func TestRadialGradientImage_Range(t *testing.T) {
	img := RadialGradientImage(9, 9)
	g := FromImage(img)

	// Center is black, corner is white.
	r, _, _ := g.RGB(4, 4)
	assert.Equal(t, uint8(0), r)
	r, _, _ = g.RGB(0, 0)
	assert.Equal(t, uint8(255), r)
}

func TestScaleImage_KeepsSolidSolid(t *testing.T) {
	img := SolidImage(4, 4, color.RGBA{R: 50, G: 60, B: 70, A: 255})
	scaled := ScaleImage(img, 16, 16)

	g := FromImage(scaled)
	require.Equal(t, 16, g.Width())
	require.Equal(t, 16, g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			r, gg, b := g.RGB(y, x)
			assert.Equal(t, [3]uint8{50, 60, 70}, [3]uint8{r, gg, b})
		}
	}
}

func TestWritePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solid.png")

	img := SolidImage(2, 2, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	require.NoError(t, WritePNG(path, img))
	assert.FileExists(t, path)

	err := WritePNG(filepath.Join(dir, "missing", "solid.png"), img)
	assert.Error(t, err)
}
