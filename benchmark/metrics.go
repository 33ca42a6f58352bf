// Package benchmark - Functionality for comparing classification solutions.
package benchmark

import "sort"

// RunRecord captures one execution of one solution.
type RunRecord struct {
	Solution string  `json:"solution"`
	Run      int     `json:"run"`
	Output   string  `json:"output"`
	Millis   float64 `json:"millis"`
	Failed   bool    `json:"failed"`
	Reason   string  `json:"reason,omitempty"`
}

// Stats summarizes the successful runs of one solution. Failed runs count
// toward Total but are excluded from the averages.
type Stats struct {
	Solution   string  `json:"solution"`
	Mean       float64 `json:"mean_ms"`
	Min        float64 `json:"min_ms"`
	Max        float64 `json:"max_ms"`
	Successful int     `json:"successful"`
	Total      int     `json:"total"`
}

// ComputeStats reduces the records of one solution into Stats.
func ComputeStats(solution string, records []RunRecord) Stats {
	stats := Stats{Solution: solution, Total: len(records)}

	sum := 0.0
	for _, rec := range records {
		if rec.Failed {
			continue
		}
		if stats.Successful == 0 {
			stats.Min = rec.Millis
			stats.Max = rec.Millis
		} else {
			if rec.Millis < stats.Min {
				stats.Min = rec.Millis
			}
			if rec.Millis > stats.Max {
				stats.Max = rec.Millis
			}
		}
		sum += rec.Millis
		stats.Successful++
	}

	if stats.Successful > 0 {
		stats.Mean = sum / float64(stats.Successful)
	}
	return stats
}

// Rank orders stats fastest mean first. Solutions with no successful run
// sink to the bottom regardless of their zero mean.
func Rank(stats []Stats) []Stats {
	ranked := make([]Stats, len(stats))
	copy(ranked, stats)

	sort.SliceStable(ranked, func(i, j int) bool {
		if (ranked[i].Successful > 0) != (ranked[j].Successful > 0) {
			return ranked[i].Successful > 0
		}
		return ranked[i].Mean < ranked[j].Mean
	})
	return ranked
}
