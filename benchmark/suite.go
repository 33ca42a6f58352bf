package benchmark

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Suite runs every configured solution a fixed number of times against
// one image folder, sequentially, and accumulates the run records in
// memory. Nothing is persisted until the report is written.
type Suite struct {
	solutions []Solution
	folder    string
	outputDir string
	runs      int
	log       zerolog.Logger

	mu      sync.RWMutex
	order   []string
	records map[string][]RunRecord
}

// NewSuiteArgs represents the arguments for creating a new benchmark suite.
type NewSuiteArgs struct {
	// Folder is the image directory every solution is pointed at.
	Folder string
	// OutputDir is where the markdown report lands.
	OutputDir string
	// Runs is the executions per solution; DefaultRuns when <= 0.
	Runs int
	// Logger receives progress events. Logging goes to stderr so the
	// captured solution output stays clean.
	Logger zerolog.Logger
}

// NewSuite creates a new benchmark suite.
func NewSuite(args NewSuiteArgs) *Suite {
	runs := args.Runs
	if runs <= 0 {
		runs = DefaultRuns
	}
	return &Suite{
		folder:    args.Folder,
		outputDir: args.OutputDir,
		runs:      runs,
		log:       args.Logger,
		records:   make(map[string][]RunRecord),
	}
}

// AddSolution appends a solution to the execution order.
func (s *Suite) AddSolution(sol Solution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = append(s.order, sol.Name())
	s.solutions = append(s.solutions, sol)
}

// Runs returns the configured executions per solution.
func (s *Suite) Runs() int { return s.runs }

// RunAll executes every solution s.runs times in order. A failed run is
// recorded and skipped; only context cancellation stops the suite early.
func (s *Suite) RunAll(ctx context.Context) error {
	s.mu.RLock()
	solutions := make([]Solution, len(s.solutions))
	copy(solutions, s.solutions)
	s.mu.RUnlock()

	for _, sol := range solutions {
		s.log.Info().Str("solution", sol.Name()).Int("runs", s.runs).Msg("benchmarking solution")

		for run := 1; run <= s.runs; run++ {
			if err := ctx.Err(); err != nil {
				return err
			}

			started := time.Now()
			out, err := sol.Run(ctx, s.folder)

			rec := RunRecord{Solution: sol.Name(), Run: run}
			if err != nil {
				rec.Failed = true
				rec.Reason = err.Error()
				s.log.Warn().
					Str("solution", sol.Name()).
					Int("run", run).
					Err(err).
					Msg("run failed")
			} else {
				rec.Output = out.Output
				rec.Millis = out.Millis
				s.log.Debug().
					Str("solution", sol.Name()).
					Int("run", run).
					Float64("analysis_ms", out.Millis).
					Dur("wall", time.Since(started)).
					Msg("run completed")
			}

			s.mu.Lock()
			s.records[sol.Name()] = append(s.records[sol.Name()], rec)
			s.mu.Unlock()
		}
	}

	return nil
}

// Records returns the run records of one solution.
func (s *Suite) Records(solution string) []RunRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]RunRecord, len(s.records[solution]))
	copy(records, s.records[solution])
	return records
}

// Stats computes per-solution statistics in execution order.
func (s *Suite) Stats() []Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make([]Stats, 0, len(s.order))
	for _, name := range s.order {
		stats = append(stats, ComputeStats(name, s.records[name]))
	}
	return stats
}
