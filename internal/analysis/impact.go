package analysis

import "fmt"

// ImpactRow is the mean Found for runs sharing one parameter value.
type ImpactRow struct {
	Value     string  `json:"value"`
	MeanFound float64 `json:"mean_found"`
	// SampleTotal is the Total of the first matching run, used as a display denominator.
	SampleTotal int `json:"sample_total"`
	Matches     int `json:"matches"`
}

// ParameterImpact is the impact table of a single parameter.
type ParameterImpact struct {
	Parameter Parameter   `json:"parameter"`
	Rows      []ImpactRow `json:"rows"`
}

// ImpactAnalyzer isolates the effect of a single configuration parameter.
// Only runs on the baseline embedding model take part, so the model does not
// act as a second variable.
type ImpactAnalyzer struct {
	baselineModel string
}

func NewImpactAnalyzer(baselineModel string) *ImpactAnalyzer {
	return &ImpactAnalyzer{baselineModel: baselineModel}
}

func (ia *ImpactAnalyzer) BaselineModel() string {
	return ia.baselineModel
}

// ImpactOf groups the baseline-model runs by param and returns one row per
// candidate value, in the order the values were given.
func (ia *ImpactAnalyzer) ImpactOf(analyses []RunAnalysis, param Parameter, values []string) ([]ImpactRow, error) {
	if _, err := ParseParameter(string(param)); err != nil {
		return nil, err
	}

	rows, err := groupBy(FilterByModel(analyses, ia.baselineModel), param, values)
	if err != nil {
		return nil, fmt.Errorf("impact of %s: %w", param, err)
	}
	return rows, nil
}

// CompareModels groups every run by embedding model, without the baseline filter.
func (ia *ImpactAnalyzer) CompareModels(analyses []RunAnalysis, models []string) []ImpactRow {
	rows, err := groupBy(analyses, ParamEmbeddingModel, models)
	if err != nil {
		// ParamEmbeddingModel is one of the enumerated parameters, so its extractor never fails.
		panic(fmt.Sprintf("compare models: %v", err))
	}
	return rows
}

// FilterByModel keeps the analyses whose run used model, preserving order.
func FilterByModel(analyses []RunAnalysis, model string) []RunAnalysis {
	var out []RunAnalysis
	for _, a := range analyses {
		if a.Run.EmbeddingModel == model {
			out = append(out, a)
		}
	}
	return out
}

// DistinctValues returns the values of param present in analyses, in first-seen order.
func DistinctValues(analyses []RunAnalysis, param Parameter) ([]string, error) {
	seen := make(map[string]bool)
	var values []string
	for _, a := range analyses {
		v, err := param.Value(a.Run)
		if err != nil {
			return nil, err
		}
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values, nil
}

func groupBy(analyses []RunAnalysis, param Parameter, values []string) ([]ImpactRow, error) {
	rows := make([]ImpactRow, 0, len(values))

	for _, value := range values {
		row := ImpactRow{Value: value}
		var foundSum int

		for _, a := range analyses {
			v, err := param.Value(a.Run)
			if err != nil {
				return nil, err
			}
			if v != value {
				continue
			}
			if row.Matches == 0 {
				row.SampleTotal = a.Total
			}
			row.Matches++
			foundSum += a.Found
		}

		if row.Matches > 0 {
			row.MeanFound = float64(foundSum) / float64(row.Matches)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
