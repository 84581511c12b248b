package dataset

import "github.com/DjordjeVuckovic/chunk-bench/internal/domain"

// Dataset is a recorded set of test runs with their per-query results.
type Dataset struct {
	Name string     `yaml:"name"`
	Runs []RunEntry `yaml:"runs" jsonschema:"required,minItems=1"`
}

type RunEntry struct {
	domain.TestRun `yaml:",inline"`
	Results        []domain.TestResult `yaml:"results"`
}

// AllResults flattens the results of every run, in run order.
func (d *Dataset) AllResults() []domain.TestResult {
	var out []domain.TestResult
	for _, r := range d.Runs {
		out = append(out, r.Results...)
	}
	return out
}
