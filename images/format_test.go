package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSupportedPath(t *testing.T) {
	supported := []string{
		"a.jpg", "b.jpeg", "c.png", "d.gif", "e.bmp", "f.webp", "g.tiff", "h.tif",
		"shouty.PNG", "Mixed.JpEg", "/some/dir/photo.TIF",
	}
	for _, path := range supported {
		assert.True(t, IsSupportedPath(path), path)
	}

	unsupported := []string{"notes.txt", "archive.zip", "image", "trick.png.bak", "h.heic"}
	for _, path := range unsupported {
		assert.False(t, IsSupportedPath(path), path)
	}
}

func TestSupportedExtensions_Sorted(t *testing.T) {
	exts := SupportedExtensions()
	assert.Equal(t, []string{".bmp", ".gif", ".jpeg", ".jpg", ".png", ".tif", ".tiff", ".webp"}, exts)
}
