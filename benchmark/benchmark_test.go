package benchmark

import (
	"context"
	"image/color"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/image-triage/go-triage/images"
)

func TestParseElapsed(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   float64
		ok     bool
	}{
		{
			name:   "plain line",
			output: "Total processing time: 12.34 milliseconds\n",
			want:   12.34,
			ok:     true,
		},
		{
			name: "embedded in run output",
			output: "black.png (2x2): All black\n" +
				"white.png (2x2): All white\n" +
				"Total processing time: 0.71 milliseconds\n",
			want: 0.71,
			ok:   true,
		},
		{
			name:   "integer milliseconds",
			output: "Total processing time: 5 milliseconds",
			want:   5,
			ok:     true,
		},
		{name: "missing line", output: "something else entirely"},
		{name: "empty output", output: ""},
		{name: "wrong unit", output: "Total processing time: 12.34 seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseElapsed(tt.output)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestComputeStats(t *testing.T) {
	records := []RunRecord{
		{Solution: "s", Run: 1, Millis: 10},
		{Solution: "s", Run: 2, Millis: 20},
		{Solution: "s", Run: 3, Failed: true, Reason: "timed out after 1m0s"},
		{Solution: "s", Run: 4, Millis: 30},
	}

	stats := ComputeStats("s", records)
	assert.Equal(t, "s", stats.Solution)
	assert.Equal(t, 3, stats.Successful)
	assert.Equal(t, 4, stats.Total)
	assert.InDelta(t, 20.0, stats.Mean, 1e-9)
	assert.InDelta(t, 10.0, stats.Min, 1e-9)
	assert.InDelta(t, 30.0, stats.Max, 1e-9)
}

func TestComputeStats_AllFailed(t *testing.T) {
	records := []RunRecord{
		{Solution: "s", Run: 1, Failed: true},
		{Solution: "s", Run: 2, Failed: true},
	}
	stats := ComputeStats("s", records)
	assert.Zero(t, stats.Successful)
	assert.Equal(t, 2, stats.Total)
	assert.Zero(t, stats.Mean)
}

func TestRank(t *testing.T) {
	stats := []Stats{
		{Solution: "slow", Mean: 50, Successful: 10, Total: 10},
		{Solution: "dead", Mean: 0, Successful: 0, Total: 10},
		{Solution: "fast", Mean: 5, Successful: 10, Total: 10},
		{Solution: "mid", Mean: 20, Successful: 8, Total: 10},
	}

	ranked := Rank(stats)
	names := make([]string, len(ranked))
	for i, st := range ranked {
		names[i] = st.Solution
	}
	assert.Equal(t, []string{"fast", "mid", "slow", "dead"}, names)
}

func TestDecoderSolution_Run(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, images.WritePNG(filepath.Join(dir, "black.png"),
		images.SolidImage(2, 2, color.RGBA{A: 255})))

	sol, err := NewDecoderSolution("native")
	require.NoError(t, err)
	assert.Equal(t, "native", sol.Name())

	out, err := sol.Run(context.Background(), dir)
	require.NoError(t, err)
	assert.Contains(t, out.Output, "black.png (2x2): All black")
	assert.Contains(t, out.Output, "Total processing time:")
	assert.Greater(t, out.Millis, 0.0)

	// The printed line and the structured value describe the same clock.
	printed, ok := ParseElapsed(out.Output)
	require.True(t, ok)
	assert.InDelta(t, printed, out.Millis, 0.01)
}

func TestDecoderSolution_UnknownDecoder(t *testing.T) {
	_, err := NewDecoderSolution("imaginary")
	assert.Error(t, err)
}

func TestDecoderSolution_MissingFolder(t *testing.T) {
	sol, err := NewDecoderSolution("native")
	require.NoError(t, err)

	_, err = sol.Run(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestCommandSolution_MissingExecutable(t *testing.T) {
	sol := &CommandSolution{
		SolutionName: "ghost",
		Command:      []string{"/definitely/not/a/binary"},
		Timeout:      time.Second,
	}
	_, err := sol.Run(context.Background(), t.TempDir())
	assert.Error(t, err)
}

func TestCommandSolution_NoCommand(t *testing.T) {
	sol := &CommandSolution{SolutionName: "empty"}
	_, err := sol.Run(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command")
}

func TestSuite_RunAllAndStats(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, images.WritePNG(filepath.Join(dir, "black.png"),
		images.SolidImage(2, 2, color.RGBA{A: 255})))
	require.NoError(t, images.WritePNG(filepath.Join(dir, "white.png"),
		images.SolidImage(2, 2, color.RGBA{R: 255, G: 255, B: 255, A: 255})))

	suite := NewSuite(NewSuiteArgs{
		Folder:    dir,
		OutputDir: t.TempDir(),
		Runs:      3,
		Logger:    zerolog.Nop(),
	})

	sol, err := NewDecoderSolution("native")
	require.NoError(t, err)
	suite.AddSolution(sol)

	// A command solution that always fails must not abort the suite.
	suite.AddSolution(&CommandSolution{
		SolutionName: "ghost",
		Command:      []string{"/definitely/not/a/binary"},
		Timeout:      time.Second,
	})

	require.NoError(t, suite.RunAll(context.Background()))

	stats := suite.Stats()
	require.Len(t, stats, 2)

	assert.Equal(t, "native", stats[0].Solution)
	assert.Equal(t, 3, stats[0].Successful)
	assert.Equal(t, 3, stats[0].Total)
	assert.Greater(t, stats[0].Mean, 0.0)
	assert.LessOrEqual(t, stats[0].Min, stats[0].Mean)
	assert.LessOrEqual(t, stats[0].Mean, stats[0].Max)

	assert.Equal(t, "ghost", stats[1].Solution)
	assert.Zero(t, stats[1].Successful)
	assert.Equal(t, 3, stats[1].Total)

	records := suite.Records("native")
	require.Len(t, records, 3)
	for i, rec := range records {
		assert.Equal(t, i+1, rec.Run)
		assert.False(t, rec.Failed)
		assert.Contains(t, rec.Output, "black.png (2x2): All black")
		assert.Contains(t, rec.Output, "white.png (2x2): All white")
	}
}

func TestSuite_CanceledContext(t *testing.T) {
	suite := NewSuite(NewSuiteArgs{
		Folder:    t.TempDir(),
		OutputDir: t.TempDir(),
		Runs:      2,
		Logger:    zerolog.Nop(),
	})
	sol, err := NewDecoderSolution("native")
	require.NoError(t, err)
	suite.AddSolution(sol)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, suite.RunAll(ctx))
}
