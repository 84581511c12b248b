package in_mem

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/chunk-bench/internal/domain"
	"github.com/google/uuid"
)

// Store keeps runs and results in memory. It backs fixture-driven evaluations and tests.
type Store struct {
	mu      sync.RWMutex
	runs    []domain.TestRun
	results map[uuid.UUID][]domain.TestResult
}

func NewStore() *Store {
	return &Store{
		results: make(map[uuid.UUID][]domain.TestResult),
	}
}

func (s *Store) SaveRun(ctx context.Context, run domain.TestRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	for i, existing := range s.runs {
		if existing.ID == run.ID {
			s.runs[i] = run
			return nil
		}
	}
	s.runs = append(s.runs, run)
	slog.Debug("Saved run to in-memory storage", "name", run.Name, "id", run.ID)
	return nil
}

func (s *Store) SaveResults(ctx context.Context, results []domain.TestResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range results {
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		existing := s.results[r.RunID]
		if i := slices.IndexFunc(existing, func(e domain.TestResult) bool { return e.ID == r.ID }); i >= 0 {
			existing[i] = r
			continue
		}
		s.results[r.RunID] = append(existing, r)
	}
	return nil
}

func (s *Store) ListRuns(ctx context.Context) ([]domain.TestRun, error) {
	s.mu.RLock()
	runs := slices.Clone(s.runs)
	s.mu.RUnlock()

	slices.SortStableFunc(runs, func(a, b domain.TestRun) int {
		return cmp.Compare(a.CreatedAt.UnixNano(), b.CreatedAt.UnixNano())
	})
	return runs, nil
}

func (s *Store) ListResults(ctx context.Context, runID uuid.UUID) ([]domain.TestResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.results[runID]), nil
}
