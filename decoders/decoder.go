// Package decoders - Image decoding strategies behind a common interface.
package decoders

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/image-triage/go-triage/images"
)

// Decoder turns an image file into a pixel grid. Implementations differ
// only in the backing library; the classification logic downstream is
// shared.
type Decoder interface {
	// Name is the identifier the decoder registers under.
	Name() string
	// Decode reads and decodes one image file. The returned grid owns a
	// copy of the pixel data; no file handle outlives the call.
	Decode(path string) (*images.Grid, error)
}

var registry = map[string]Decoder{}

// Register adds a decoder to the registry. Called from implementation
// init functions; a duplicate name panics because it is a programming
// error.
func Register(d Decoder) {
	if _, ok := registry[d.Name()]; ok {
		panic("decoders: duplicate registration of " + d.Name())
	}
	registry[d.Name()] = d
}

// Lookup returns the decoder registered under name.
func Lookup(name string) (Decoder, error) {
	d, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("unknown decoder %q (available: %v)", name, Names())
	}
	return d, nil
}

// Names returns all registered decoder names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
