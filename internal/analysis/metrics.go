package analysis

import "github.com/DjordjeVuckovic/chunk-bench/internal/domain"

// RunAnalysis holds the comparative metrics of a single TestRun.
type RunAnalysis struct {
	Run   domain.TestRun `json:"run"`
	Found int            `json:"found"`
	Total int            `json:"total"`
	// AvgRank is the mean answer rank over results that carry a rank.
	// It is 0 when no result has a rank; that value is a sentinel, not a mean,
	// and it sorts as the best possible rank among runs with equal Found.
	AvgRank float64 `json:"avg_rank"`
	// RankedCount is the number of results that contributed to AvgRank.
	RankedCount int `json:"ranked_count"`
	// MRR is the mean reciprocal rank over all results, unranked ones count 0.
	// It is informational and takes no part in ranking.
	MRR float64 `json:"mrr"`
}

// HasRankData reports whether AvgRank is a real mean rather than the sentinel.
func (a RunAnalysis) HasRankData() bool {
	return a.RankedCount > 0
}

// HitRate is Found/Total, 0 for a run without results.
func (a RunAnalysis) HitRate() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Found) / float64(a.Total)
}

// ComputeMetrics scores one run from its results.
// Results are expected to belong to run already; they are not re-filtered.
func ComputeMetrics(run domain.TestRun, results []domain.TestResult) RunAnalysis {
	a := RunAnalysis{
		Run:   run,
		Total: len(results),
	}

	var rankSum int
	var reciprocalSum float64
	for _, r := range results {
		if r.AnswerFound {
			a.Found++
		}
		if r.HasRank() {
			rankSum += *r.AnswerRank
			reciprocalSum += 1 / float64(*r.AnswerRank)
			a.RankedCount++
		}
	}

	if a.RankedCount > 0 {
		a.AvgRank = float64(rankSum) / float64(a.RankedCount)
		a.MRR = reciprocalSum / float64(a.Total)
	}

	return a
}
