package decoders

import (
	"image"
	"os"

	"github.com/pkg/errors"

	// Register the pure-Go decoders with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/chai2010/webp"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/image-triage/go-triage/images"
)

// nativeDecoder decodes with the Go standard library plus the pure-Go
// bmp, tiff and webp format packages.
type nativeDecoder struct{}

func init() {
	Register(nativeDecoder{})
}

func (nativeDecoder) Name() string { return "native" }

func (nativeDecoder) Decode(path string) (*images.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode image")
	}

	return images.FromImage(img), nil
}
