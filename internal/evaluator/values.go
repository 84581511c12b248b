package evaluator

import (
	"slices"
	"strconv"

	"github.com/DjordjeVuckovic/chunk-bench/internal/analysis"
)

// discoverValues lists the distinct values of param, numerically ascending
// when every value is an integer and in first-seen order otherwise.
func discoverValues(analyses []analysis.RunAnalysis, param analysis.Parameter) ([]string, error) {
	values, err := analysis.DistinctValues(analyses, param)
	if err != nil {
		return nil, err
	}

	nums := make(map[string]int, len(values))
	for _, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil {
			return values, nil
		}
		nums[v] = n
	}

	slices.SortFunc(values, func(a, b string) int {
		return nums[a] - nums[b]
	})
	return values, nil
}
