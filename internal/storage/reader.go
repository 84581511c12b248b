package storage

import (
	"context"

	"github.com/DjordjeVuckovic/chunk-bench/internal/domain"
	"github.com/google/uuid"
)

// Reader gives read-only access to recorded test runs and their results.
type Reader interface {
	// ListRuns returns every run ordered by creation time, oldest first.
	ListRuns(ctx context.Context) ([]domain.TestRun, error)
	// ListResults returns all results recorded for runID, in no particular order.
	ListResults(ctx context.Context, runID uuid.UUID) ([]domain.TestResult, error)
}
