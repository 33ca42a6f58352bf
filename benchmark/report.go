package benchmark

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ReportFilename builds the timestamped markdown artifact name.
func ReportFilename(t time.Time) string {
	return fmt.Sprintf("benchmark_results_%s.md", t.Format("2006-01-02_15-04-05"))
}

// PrintSummaryTable writes the plain-text ranking to w, fastest solution
// first.
func (s *Suite) PrintSummaryTable(w io.Writer) {
	ranked := Rank(s.Stats())

	fmt.Fprintf(w, "%-15s %-25s %-15s\n", "Solution", "Avg Analysis Time (ms)", "Successful Runs")
	fmt.Fprintln(w, strings.Repeat("-", 55))
	for _, st := range ranked {
		fmt.Fprintf(w, "%-15s %-25.2f %d/%d\n", st.Solution, st.Mean, st.Successful, st.Total)
	}
}

// RenderReport produces the markdown benchmark report: a ranked summary
// table followed by per-solution detail sections with individual run
// timings and the first run's output.
func (s *Suite) RenderReport(now time.Time) string {
	ranked := Rank(s.Stats())

	var md strings.Builder
	md.WriteString("# Image Detection Solutions Benchmark Results\n\n")
	fmt.Fprintf(&md, "**Generated:** %s\n\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&md, "**Runs per solution:** %d\n\n", s.runs)
	md.WriteString("---\n\n")

	md.WriteString("## Final Results - Average Analysis Times\n\n")
	md.WriteString("| Solution | Avg Analysis Time (ms) | Successful Runs |\n")
	md.WriteString("|----------|------------------------|-----------------|\n")
	for _, st := range ranked {
		fmt.Fprintf(&md, "| %s | %.2f | %d/%d |\n", st.Solution, st.Mean, st.Successful, st.Total)
	}
	md.WriteString("\n---\n\n")

	md.WriteString("## Detailed Results by Solution\n")
	for _, name := range s.orderSnapshot() {
		records := s.Records(name)
		stats := ComputeStats(name, records)
		if stats.Successful == 0 {
			continue
		}

		fmt.Fprintf(&md, "\n### %s\n\n", strings.ToUpper(name))
		md.WriteString("**Summary:**\n")
		fmt.Fprintf(&md, "- Successful runs: %d/%d\n", stats.Successful, stats.Total)
		fmt.Fprintf(&md, "- Average analysis time: %.2f milliseconds\n", stats.Mean)
		fmt.Fprintf(&md, "- Min analysis time: %.2f milliseconds\n", stats.Min)
		fmt.Fprintf(&md, "- Max analysis time: %.2f milliseconds\n\n", stats.Max)

		md.WriteString("**Individual Run Results:**\n\n")
		md.WriteString("| Run | Analysis Time (ms) |\n")
		md.WriteString("|-----|-------------------|\n")
		for _, rec := range records {
			if rec.Failed {
				continue
			}
			fmt.Fprintf(&md, "| %d | %.2f |\n", rec.Run, rec.Millis)
		}
		md.WriteString("\n")

		for _, rec := range records {
			if rec.Failed {
				continue
			}
			fmt.Fprintf(&md, "**Example Output (Run %d):**\n\n", rec.Run)
			md.WriteString("```\n")
			md.WriteString(strings.TrimRight(rec.Output, "\n"))
			md.WriteString("\n```\n")
			break
		}
	}

	md.WriteString("\n---\n\n")
	md.WriteString("## Notes\n\n")
	md.WriteString("- Analysis time is measured internally by each solution\n")
	md.WriteString("- This represents the image analysis time, not the total program execution time\n")
	md.WriteString("- Times are reported in milliseconds\n")

	return md.String()
}

// WriteReport renders the markdown report into the suite's output
// directory and returns the file path.
func (s *Suite) WriteReport(now time.Time) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create output directory")
	}

	path := filepath.Join(s.outputDir, ReportFilename(now))
	if err := os.WriteFile(path, []byte(s.RenderReport(now)), 0o644); err != nil {
		return "", errors.Wrap(err, "failed to write report")
	}
	return path, nil
}

func (s *Suite) orderSnapshot() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order := make([]string, len(s.order))
	copy(order, s.order)
	return order
}
