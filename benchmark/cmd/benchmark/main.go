package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/image-triage/go-triage/benchmark"
	"github.com/image-triage/go-triage/decoders"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to benchmark configuration file")
		imagesPath = flag.String("images", "", "Path to the image folder to classify")
		outputDir  = flag.String("output", "./benchmark_results", "Output directory for the markdown report")
		runs       = flag.Int("runs", benchmark.DefaultRuns, "Runs per solution")
		timeout    = flag.Duration("timeout", benchmark.DefaultTimeout, "Timeout per external solution run")
		solutions  = flag.String("solutions", "", "Comma-separated decoder names (default: all registered)")
		verbose    = flag.Bool("verbose", false, "Log every run instead of per-solution progress")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()

	cfg := benchmark.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = benchmark.LoadConfig(*configFile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	// Explicitly passed flags override the config file.
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["images"] {
		cfg.ImagesPath = *imagesPath
	}
	if set["runs"] {
		cfg.Runs = *runs
	}
	if set["timeout"] {
		cfg.TimeoutSeconds = int(*timeout / time.Second)
	}
	if set["output"] {
		cfg.OutputDir = *outputDir
	}
	if *solutions != "" {
		cfg.Solutions = nil
		for _, name := range strings.Split(*solutions, ",") {
			name = strings.TrimSpace(name)
			cfg.Solutions = append(cfg.Solutions, benchmark.SolutionConfig{
				Name:    name,
				Type:    benchmark.SolutionTypeDecoder,
				Decoder: name,
			})
		}
	}

	if info, err := os.Stat(cfg.ImagesPath); err != nil || !info.IsDir() {
		log.Fatal().Str("path", cfg.ImagesPath).Msg("images path is not a directory")
	}

	sols, err := cfg.BuildSolutions()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build solutions")
	}

	suite := benchmark.NewSuite(benchmark.NewSuiteArgs{
		Folder:    cfg.ImagesPath,
		OutputDir: cfg.OutputDir,
		Runs:      cfg.Runs,
		Logger:    log,
	})
	for _, sol := range sols {
		suite.AddSolution(sol)
	}

	ctx := context.Background()
	start := time.Now()
	if err := suite.RunAll(ctx); err != nil {
		log.Fatal().Err(err).Msg("benchmark execution failed")
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("benchmark completed")

	fmt.Println()
	fmt.Println("FINAL RESULTS - Average Analysis Times (Internal Measurement)")
	fmt.Println()
	suite.PrintSummaryTable(os.Stdout)

	path, err := suite.WriteReport(time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to write report")
	}
	fmt.Printf("\nBenchmark results saved to: %s\n", path)
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "Benchmark tool comparing image classification decoders.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nRegistered decoders: %s\n", strings.Join(decoders.Names(), ", "))
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -images ./data -runs 10\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "  %s -config ./benchmark_config.json -verbose\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "  %s -images ./data -solutions native,opencv\n", filepath.Base(os.Args[0]))
	}
}
