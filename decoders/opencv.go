package decoders

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/image-triage/go-triage/images"
)

// opencvDecoder decodes through OpenCV. Mats come back in BGR order; the
// grid records that instead of reshuffling the bytes.
type opencvDecoder struct{}

func init() {
	Register(opencvDecoder{})
}

func (opencvDecoder) Name() string { return "opencv" }

func (opencvDecoder) Decode(path string) (*images.Grid, error) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		return nil, errors.Errorf("failed to decode image %s", path)
	}
	defer mat.Close()

	data, err := mat.DataPtrUint8()
	if err != nil {
		return nil, errors.Wrap(err, "failed to access pixel data")
	}

	// The Mat buffer dies with the Mat, so the grid gets a copy.
	samples := make([]uint8, len(data))
	copy(samples, data)

	return images.NewGrid(mat.Rows(), mat.Cols(), mat.Channels(), images.OrderBGR, samples)
}
