package analysis

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/DjordjeVuckovic/chunk-bench/internal/apperr"
)

// Rank orders analyses best first: Found descending, then AvgRank ascending.
// The sort is stable, so ties keep their input order. The input is not modified.
func Rank(analyses []RunAnalysis) []RunAnalysis {
	ranked := slices.Clone(analyses)
	slices.SortStableFunc(ranked, compareAnalyses)
	return ranked
}

func compareAnalyses(a, b RunAnalysis) int {
	if c := cmp.Compare(b.Found, a.Found); c != 0 {
		return c
	}
	return cmp.Compare(a.AvgRank, b.AvgRank)
}

// Best returns the top entry of an already ranked sequence.
func Best(ranked []RunAnalysis) (RunAnalysis, error) {
	if len(ranked) == 0 {
		return RunAnalysis{}, fmt.Errorf("select best configuration: %w", apperr.ErrEmptyInput)
	}
	return ranked[0], nil
}

// Top returns at most n leading entries of ranked; n <= 0 returns all of them.
func Top(ranked []RunAnalysis, n int) []RunAnalysis {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}
