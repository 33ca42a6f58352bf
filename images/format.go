package images

import (
	"path/filepath"
	"sort"
	"strings"
)

// supportedExtensions is the set of file extensions the decoders accept,
// lowercase with the leading dot.
var supportedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".bmp":  {},
	".webp": {},
	".tiff": {},
	".tif":  {},
}

// IsSupportedPath reports whether the path has a supported image
// extension. The check is case-insensitive.
func IsSupportedPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := supportedExtensions[ext]
	return ok
}

// SupportedExtensions returns the supported extensions sorted
// alphabetically, for use in user-facing messages.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(supportedExtensions))
	for ext := range supportedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
