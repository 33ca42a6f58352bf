// Package images - Decoded pixel grids and luminance utilities.
package images

import (
	"crypto/md5"
	"fmt"
	"image"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// ChannelOrder describes how color samples are interleaved in a Grid.
// Decoders produce whatever order their backing library uses; consumers
// read pixels through Grid.RGB which honors the order.
type ChannelOrder string

const (
	// OrderGray is a single brightness sample per pixel.
	OrderGray ChannelOrder = "gray"
	// OrderRGB is red, green, blue (alpha last when present).
	OrderRGB ChannelOrder = "rgb"
	// OrderBGR is blue, green, red (OpenCV convention, alpha last when present).
	OrderBGR ChannelOrder = "bgr"
)

// Grid is a decoded image: a dense height x width x channels tensor of
// unsigned 8-bit samples. The tensor owns the sample buffer; data is the
// tensor's backing slice and shape is the tensor's shape. A Grid is
// read-only once constructed and carries no handle to the file it was
// decoded from.
type Grid struct {
	t     *tensor.Dense
	data  []uint8
	shape tensor.Shape
	order ChannelOrder
}

// NewGrid wraps a raw interleaved sample buffer as a Grid.
//
// Arguments:
// - height: Number of pixel rows.
// - width: Number of pixel columns.
// - channels: Samples per pixel, 1, 3 or 4.
// - order: Channel interleaving of the buffer.
// - samples: Raw buffer of length height*width*channels.
//
// Returns:
// - *Grid: The constructed grid.
// - error: Error if the dimensions are inconsistent with the buffer.
func NewGrid(height, width, channels int, order ChannelOrder, samples []uint8) (*Grid, error) {
	if height < 0 || width < 0 {
		return nil, errors.Errorf("negative dimensions: %dx%d", width, height)
	}
	if channels != 1 && channels != 3 && channels != 4 {
		return nil, errors.Errorf("unsupported channel count: %d", channels)
	}
	if order == OrderGray && channels != 1 {
		return nil, errors.Errorf("gray order requires 1 channel, got %d", channels)
	}
	if len(samples) != height*width*channels {
		return nil, errors.Errorf("sample buffer has %d bytes, want %d (%dx%dx%d)",
			len(samples), height*width*channels, height, width, channels)
	}

	g := &Grid{
		shape: tensor.Shape{height, width, channels},
		order: order,
	}
	// A zero-pixel grid has no backing tensor.
	if height > 0 && width > 0 {
		g.t = tensor.New(tensor.WithShape(height, width, channels), tensor.WithBacking(samples))
		g.shape = g.t.Shape()
		g.data = g.t.Data().([]uint8)
	}
	return g, nil
}

// FromImage converts a decoded image.Image into an RGB Grid, discarding
// any alpha information the source carries.
func FromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	samples := make([]uint8, height*width*3)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			samples[i] = uint8(r >> 8)
			samples[i+1] = uint8(g >> 8)
			samples[i+2] = uint8(b >> 8)
			i += 3
		}
	}

	grid, _ := NewGrid(height, width, 3, OrderRGB, samples)
	return grid
}

// Height returns the number of pixel rows.
func (g *Grid) Height() int { return g.shape[0] }

// Width returns the number of pixel columns.
func (g *Grid) Width() int { return g.shape[1] }

// Channels returns the number of samples per pixel.
func (g *Grid) Channels() int { return g.shape[2] }

// Order returns the channel interleaving of the grid.
func (g *Grid) Order() ChannelOrder { return g.order }

// Empty reports whether the grid holds no pixels.
func (g *Grid) Empty() bool { return g == nil || g.shape[0] == 0 || g.shape[1] == 0 }

// Tensor exposes the backing tensor, nil for a zero-pixel grid.
func (g *Grid) Tensor() *tensor.Dense { return g.t }

// Checksum generates a deterministic checksum of the tensor's sample
// buffer to verify the grid is not mutated by read-only operations.
func (g *Grid) Checksum() string {
	if g.Empty() {
		return "empty"
	}

	hash := md5.New()
	hash.Write(g.t.Data().([]uint8))
	return fmt.Sprintf("%x", hash.Sum(nil))
}

// Sample returns the raw sample at row y, column x, channel c.
func (g *Grid) Sample(y, x, c int) uint8 {
	return g.data[(y*g.shape[1]+x)*g.shape[2]+c]
}

// RGB returns the red, green and blue samples of the pixel at row y,
// column x, normalizing the channel order and ignoring alpha. For a
// grayscale grid all three components are the gray sample.
func (g *Grid) RGB(y, x int) (r, gr, b uint8) {
	base := (y*g.shape[1] + x) * g.shape[2]
	switch g.order {
	case OrderBGR:
		return g.data[base+2], g.data[base+1], g.data[base]
	case OrderGray:
		v := g.data[base]
		return v, v, v
	default:
		return g.data[base], g.data[base+1], g.data[base+2]
	}
}
