package benchmark

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/image-triage/go-triage/decoders"
)

// Solution config types.
const (
	// SolutionTypeDecoder runs an in-process decoding strategy.
	SolutionTypeDecoder = "decoder"
	// SolutionTypeCommand runs an external program.
	SolutionTypeCommand = "command"
)

// SolutionConfig declares one solution to benchmark.
type SolutionConfig struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Decoder string   `json:"decoder,omitempty"`
	Command []string `json:"command,omitempty"`
	Dir     string   `json:"dir,omitempty"`
}

// Config represents the overall benchmark configuration.
type Config struct {
	OutputDir      string           `json:"output_dir"`
	ImagesPath     string           `json:"images_path"`
	Runs           int              `json:"runs"`
	TimeoutSeconds int              `json:"timeout_seconds"`
	Solutions      []SolutionConfig `json:"solutions"`
}

// DefaultConfig benchmarks every registered decoder against ./data with
// the standard run count and timeout.
func DefaultConfig() *Config {
	cfg := &Config{
		OutputDir:      "./benchmark_results",
		ImagesPath:     "./data",
		Runs:           DefaultRuns,
		TimeoutSeconds: int(DefaultTimeout / time.Second),
	}
	for _, name := range decoders.Names() {
		cfg.Solutions = append(cfg.Solutions, SolutionConfig{
			Name:    name,
			Type:    SolutionTypeDecoder,
			Decoder: name,
		})
	}
	return cfg
}

// LoadConfig loads benchmark configuration from a JSON file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}

// Save writes the configuration to a JSON file.
func (c *Config) Save(filename string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

// BuildSolutions resolves the configured solutions into runnable ones.
func (c *Config) BuildSolutions() ([]Solution, error) {
	timeout := time.Duration(c.TimeoutSeconds) * time.Second

	var solutions []Solution
	for _, sc := range c.Solutions {
		switch sc.Type {
		case SolutionTypeDecoder, "":
			name := sc.Decoder
			if name == "" {
				name = sc.Name
			}
			sol, err := NewDecoderSolution(name)
			if err != nil {
				return nil, errors.Wrapf(err, "solution %s", sc.Name)
			}
			solutions = append(solutions, sol)
		case SolutionTypeCommand:
			if len(sc.Command) == 0 {
				return nil, errors.Errorf("solution %s has no command", sc.Name)
			}
			solutions = append(solutions, &CommandSolution{
				SolutionName: sc.Name,
				Command:      sc.Command,
				Dir:          sc.Dir,
				Timeout:      timeout,
			})
		default:
			return nil, errors.Errorf("solution %s has unknown type %q", sc.Name, sc.Type)
		}
	}
	return solutions, nil
}
