package decoders

import (
	"bytes"
	"image/png"
	"os"

	"github.com/cshum/vipsgen/vips"
	"github.com/pkg/errors"

	"github.com/image-triage/go-triage/images"
)

// vipsDecoder decodes through libvips. The image is loaded with vips and
// re-exported to a PNG buffer, then read into a grid with the stdlib
// decoder; libvips keeps the heavy lifting and the grid layout stays
// uniform with the native path.
type vipsDecoder struct{}

func init() {
	Register(vipsDecoder{})
}

func (vipsDecoder) Name() string { return "vips" }

func (vipsDecoder) Decode(path string) (*images.Grid, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read image")
	}

	img, err := vips.NewImageFromBuffer(b, &vips.LoadOptions{
		Access: vips.AccessSequential,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load image")
	}
	defer img.Close()

	encoded, err := img.PngsaveBuffer(&vips.PngsaveBufferOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to export pixel data")
	}
	if len(encoded) == 0 {
		return nil, errors.New("vips exported an empty PNG buffer")
	}

	decoded, err := png.Decode(bytes.NewReader(encoded))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode exported PNG")
	}

	return images.FromImage(decoded), nil
}
