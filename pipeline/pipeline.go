// Package pipeline - The folder-to-report classification loop.
package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/image-triage/go-triage/classify"
	"github.com/image-triage/go-triage/decoders"
	"github.com/image-triage/go-triage/images"
	"github.com/image-triage/go-triage/util"
)

// FileResult is the classification of one image file.
type FileResult struct {
	Name   string
	Width  int
	Height int
	Result classify.Result
}

// Summary aggregates one pipeline run.
type Summary struct {
	// Results holds one entry per successfully classified image.
	Results []FileResult
	// Skipped counts images excluded because decoding failed.
	Skipped int
	// Elapsed is the wall-clock time of the classification loop only.
	Elapsed time.Duration
}

// Processor classifies every supported image in a folder using one
// decoding strategy.
type Processor struct {
	Decoder decoders.Decoder
}

// Run processes the folder sequentially in sorted filename order.
//
// One line per image is written to stdout in the fixed form
// "<filename> (<width>x<height>): <label>", followed by a final
// "Total processing time: <ms> milliseconds" line. The timing covers only
// the loop that decodes and classifies; listing the folder and parsing
// arguments are outside it. Decode failures are reported on stderr and
// skipped. The stdout format is parsed downstream, so it must not change.
func (p *Processor) Run(folder string, stdout, stderr io.Writer) (*Summary, error) {
	files, err := util.ListImageFiles(folder)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}

	if len(files) == 0 {
		fmt.Fprintf(stdout, "No supported image files found in '%s'.\n", folder)
		fmt.Fprintf(stdout, "Supported formats: %s\n", strings.Join(images.SupportedExtensions(), ", "))
		return summary, nil
	}

	start := time.Now()
	for _, path := range files {
		name := filepath.Base(path)

		grid, err := p.Decoder.Decode(path)
		if err == nil && grid == nil {
			err = errors.New("decoder produced no pixel grid")
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error processing %s: %v\n", name, err)
			summary.Skipped++
			continue
		}

		result := classify.Classify(grid)
		fmt.Fprintf(stdout, "%s (%dx%d): %s\n", name, grid.Width(), grid.Height(), result)

		summary.Results = append(summary.Results, FileResult{
			Name:   name,
			Width:  grid.Width(),
			Height: grid.Height(),
			Result: result,
		})
	}
	summary.Elapsed = time.Since(start)

	fmt.Fprintf(stdout, "Total processing time: %.2f milliseconds\n",
		float64(summary.Elapsed.Nanoseconds())/1e6)

	return summary, nil
}
