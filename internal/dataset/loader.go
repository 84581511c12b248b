package dataset

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/chunk-bench/internal/apperr"
	"github.com/DjordjeVuckovic/chunk-bench/pkg/schema"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var validator = sync.OnceValues(func() (*schema.Validator, error) {
	return schema.NewValidator("dataset.schema.json", &Dataset{})
})

func LoadFromFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a dataset. Missing IDs are generated, results are
// bound to their run, and runs without created_at are stamped in file order so
// the default creation ordering follows the file.
func Parse(data []byte) (*Dataset, error) {
	var d Dataset
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, apperr.NewValidationWrap("parse dataset YAML", err)
	}
	if len(d.Runs) == 0 {
		return nil, apperr.NewValidation("dataset has no runs")
	}

	base := time.Now().UTC().Truncate(time.Second)
	seen := make(map[uuid.UUID]bool, len(d.Runs))

	for i := range d.Runs {
		run := &d.Runs[i]
		if run.Name == "" {
			return nil, apperr.NewValidation(fmt.Sprintf("run at index %d has no name", i))
		}
		if run.EmbeddingModel == "" {
			return nil, apperr.NewValidation(fmt.Sprintf("run %q has no embedding_model", run.Name))
		}
		if run.ID == uuid.Nil {
			run.ID = uuid.New()
		}
		if seen[run.ID] {
			return nil, apperr.NewValidation(fmt.Sprintf("duplicate run id %s", run.ID))
		}
		seen[run.ID] = true

		if run.CreatedAt.IsZero() {
			run.CreatedAt = base.Add(time.Duration(i) * time.Second)
		}

		for j := range run.Results {
			res := &run.Results[j]
			if res.ID == uuid.Nil {
				res.ID = uuid.New()
			}
			if res.RunID != uuid.Nil && res.RunID != run.ID {
				return nil, apperr.NewValidation(fmt.Sprintf("run %q result %d references run %s", run.Name, j, res.RunID))
			}
			res.RunID = run.ID
			if res.AnswerRank != nil && *res.AnswerRank <= 0 {
				return nil, apperr.NewValidation(fmt.Sprintf("run %q result %d has non-positive answer_rank %d", run.Name, j, *res.AnswerRank))
			}
		}
	}

	if err := validateSchema(data); err != nil {
		return nil, err
	}

	return &d, nil
}

// validateSchema rejects keys the dataset types do not define, which the YAML
// decoder would otherwise drop silently.
func validateSchema(data []byte) error {
	v, err := validator()
	if err != nil {
		return fmt.Errorf("dataset schema: %w", err)
	}
	if err := v.ValidateYAML(data); err != nil {
		return apperr.NewValidationWrap("dataset does not match schema", err)
	}
	return nil
}
