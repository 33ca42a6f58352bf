package benchmark

import (
	"bytes"
	"context"
	"os/exec"
	"regexp"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/image-triage/go-triage/decoders"
	"github.com/image-triage/go-triage/pipeline"
)

const (
	// DefaultRuns is how many times each solution executes per benchmark.
	DefaultRuns = 10
	// DefaultTimeout bounds one external solution run.
	DefaultTimeout = 60 * time.Second
)

// timePattern extracts the internally measured elapsed time from a
// solution's output. Every solution prints this exact line.
var timePattern = regexp.MustCompile(`Total processing time: ([\d.]+) milliseconds`)

// ParseElapsed pulls the reported milliseconds out of captured output.
func ParseElapsed(output string) (float64, bool) {
	m := timePattern.FindStringSubmatch(output)
	if m == nil {
		return 0, false
	}
	ms, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return ms, true
}

// RunOutput is one successful solution execution: the captured text and
// the elapsed time the solution measured internally.
type RunOutput struct {
	Output string
	Millis float64
}

// Solution is one classification implementation under benchmark. Run
// executes it once against an image folder; an error marks the run as
// failed without aborting the benchmark.
type Solution interface {
	Name() string
	Run(ctx context.Context, folder string) (RunOutput, error)
}

// DecoderSolution runs the in-process pipeline with a named decoding
// strategy. Output is captured into a buffer so the record matches what
// an external run would have printed.
type DecoderSolution struct {
	decoder decoders.Decoder
}

// NewDecoderSolution resolves a registered decoder into a solution.
func NewDecoderSolution(name string) (*DecoderSolution, error) {
	dec, err := decoders.Lookup(name)
	if err != nil {
		return nil, err
	}
	return &DecoderSolution{decoder: dec}, nil
}

// Name returns the decoder's registered name.
func (s *DecoderSolution) Name() string { return s.decoder.Name() }

// Run classifies the folder once and reports the pipeline's internal
// elapsed time.
func (s *DecoderSolution) Run(ctx context.Context, folder string) (RunOutput, error) {
	if err := ctx.Err(); err != nil {
		return RunOutput{}, err
	}

	var out, errOut bytes.Buffer
	proc := &pipeline.Processor{Decoder: s.decoder}
	summary, err := proc.Run(folder, &out, &errOut)

	combined := out.String() + errOut.String()
	if err != nil {
		return RunOutput{}, errors.Wrap(err, "pipeline run failed")
	}

	return RunOutput{
		Output: combined,
		Millis: float64(summary.Elapsed.Nanoseconds()) / 1e6,
	}, nil
}

// CommandSolution runs an external classification program and scrapes its
// reported time, so implementations in other languages can sit in the
// same ranking. The folder path is appended as the final argument.
type CommandSolution struct {
	SolutionName string
	Command      []string
	Dir          string
	Timeout      time.Duration
}

// Name returns the configured solution name.
func (s *CommandSolution) Name() string { return s.SolutionName }

// Run spawns the command, captures combined stdout and stderr, and parses
// the timing line. A timeout, a missing executable, or output without the
// timing line all surface as errors; the caller records a failed run and
// moves on.
func (s *CommandSolution) Run(ctx context.Context, folder string) (RunOutput, error) {
	if len(s.Command) == 0 {
		return RunOutput{}, errors.New("no command configured")
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := append(append([]string{}, s.Command[1:]...), folder)
	cmd := exec.CommandContext(runCtx, s.Command[0], args...)
	cmd.Dir = s.Dir

	out, err := cmd.CombinedOutput()
	if runCtx.Err() == context.DeadlineExceeded {
		return RunOutput{}, errors.Errorf("timed out after %s", timeout)
	}
	if err != nil {
		return RunOutput{}, errors.Wrapf(err, "command failed: %s", string(out))
	}

	ms, ok := ParseElapsed(string(out))
	if !ok {
		return RunOutput{}, errors.New("could not extract analysis time from output")
	}

	return RunOutput{Output: string(out), Millis: ms}, nil
}
