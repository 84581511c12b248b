package storage

import (
	"context"

	"github.com/DjordjeVuckovic/chunk-bench/internal/domain"
)

// Writer stores runs and results keyed by id. Saving an id that is already stored
// never adds a second copy.
type Writer interface {
	SaveRun(ctx context.Context, run domain.TestRun) error
	SaveResults(ctx context.Context, results []domain.TestResult) error
}

type ReadWriter interface {
	Reader
	Writer
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

var SupportedTypes = []Type{PG, ES, InMem}

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storage type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
