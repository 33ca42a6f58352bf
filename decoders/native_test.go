package decoders

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/image-triage/go-triage/images"
)

func TestRegistry(t *testing.T) {
	names := Names()
	assert.Contains(t, names, "native")
	assert.Contains(t, names, "opencv")
	assert.Contains(t, names, "vips")
	assert.IsIncreasing(t, names)

	dec, err := Lookup("native")
	require.NoError(t, err)
	assert.Equal(t, "native", dec.Name())

	_, err = Lookup("imaginary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown decoder")
}

func TestNativeDecoder_PNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solid.png")
	img := images.SolidImage(3, 2, color.RGBA{R: 100, G: 150, B: 200, A: 255})
	require.NoError(t, images.WritePNG(path, img))

	dec, err := Lookup("native")
	require.NoError(t, err)

	grid, err := dec.Decode(path)
	require.NoError(t, err)
	assert.Equal(t, 3, grid.Width())
	assert.Equal(t, 2, grid.Height())
	assert.Equal(t, images.OrderRGB, grid.Order())

	r, g, b := grid.RGB(1, 2)
	assert.Equal(t, [3]uint8{100, 150, 200}, [3]uint8{r, g, b})
}

func TestNativeDecoder_MissingFile(t *testing.T) {
	dec, err := Lookup("native")
	require.NoError(t, err)

	_, err = dec.Decode(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestNativeDecoder_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a png"), 0o644))

	dec, err := Lookup("native")
	require.NoError(t, err)

	_, err = dec.Decode(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}
