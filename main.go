// Command go-triage classifies every image in a folder as all black, all
// white, a single color, or mixed pixels, and reports how long the
// classification loop took.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/image-triage/go-triage/decoders"
	"github.com/image-triage/go-triage/pipeline"
)

func main() {
	decoderName := flag.String("decoder", "native", "Decoding strategy to use")
	flag.Usage = usage
	flag.Parse()

	folder := defaultDataPath()
	if flag.NArg() > 0 {
		folder = flag.Arg(0)
	}

	absPath, err := filepath.Abs(folder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving path: %v\n", err)
		os.Exit(1)
	}

	dec, err := decoders.Lookup(*decoderName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	proc := &pipeline.Processor{Decoder: dec}
	if _, err := proc.Run(absPath, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// defaultDataPath points at the sibling data directory when no folder
// argument is given.
func defaultDataPath() string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return filepath.Join(wd, "data")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] [folder]\n\n", filepath.Base(os.Args[0]))
	fmt.Fprintf(os.Stderr, "Classifies every supported image in folder (default: ./data).\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nRegistered decoders: %v\n", decoders.Names())
}
