package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name     string
		r, g, b  uint8
		expected int
	}{
		{name: "black", r: 0, g: 0, b: 0, expected: 0},
		{name: "white", r: 255, g: 255, b: 255, expected: 255},
		{name: "mid gray", r: 128, g: 128, b: 128, expected: 127}, // 127.999... in float64
		{name: "pure red", r: 255, g: 0, b: 0, expected: 76},
		{name: "pure green", r: 0, g: 255, b: 0, expected: 149},
		{name: "pure blue", r: 0, g: 0, b: 255, expected: 29},
		{name: "slate", r: 100, g: 150, b: 200, expected: 140}, // 29.9 + 88.05 + 22.8 = 140.75
		{name: "near black", r: 1, g: 0, b: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Luminance(tt.r, tt.g, tt.b))
		})
	}
}

// TestLuminance_Truncates verifies the result is floored, never rounded up.
func TestLuminance_Truncates(t *testing.T) {
	// 0.299*1 = 0.299 must truncate to 0, not round to 0.
	assert.Equal(t, 0, Luminance(1, 0, 0))
	// 0.587*3 = 1.761 must truncate to 1.
	assert.Equal(t, 1, Luminance(0, 3, 0))
}

func TestNormalizeGray_Exhaustive(t *testing.T) {
	assert.Equal(t, 1, NormalizeGray(0))
	assert.Equal(t, 254, NormalizeGray(255))
	for v := 1; v <= 254; v++ {
		assert.Equal(t, v, NormalizeGray(v))
	}
}
