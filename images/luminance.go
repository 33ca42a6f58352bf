package images

// Luminance calculates the gray value (brightness) of an RGB color.
// Uses the standard luminance formula: 0.299*R + 0.587*G + 0.114*B,
// truncated to an integer.
func Luminance(r, g, b uint8) int {
	return int(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b))
}

// NormalizeGray clamps a gray value into 1-254 for single color images.
// 0 and 255 are reserved for the all-black and all-white categories.
func NormalizeGray(gray int) int {
	if gray == 0 {
		return 1
	}
	if gray == 255 {
		return 254
	}
	return gray
}
