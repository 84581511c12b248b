package pg

import (
	"context"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/chunk-bench/internal/domain"
	pkgtesting "github.com/DjordjeVuckovic/chunk-bench/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, context.Context) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()
	container := pkgtesting.NewPGContainerWithCleanup(ctx, t)

	pool, err := NewConnectionPool(ctx, PoolConfig{ConnStr: container.ConnString})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return NewStore(pool), ctx
}

func TestStore_RoundTrip(t *testing.T) {
	store, ctx := newTestStore(t)
	base := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)

	later := domain.TestRun{
		ID:             uuid.New(),
		Name:           "small-500",
		EmbeddingModel: "text-embedding-3-small",
		ChunkSizeWords: 500,
		ChipPosition:   domain.ChipPrependAppend,
		AvgChunkWords:  480.25,
		CreatedAt:      base.Add(time.Minute),
	}
	earlier := domain.TestRun{
		ID:             uuid.New(),
		Name:           "small-200",
		EmbeddingModel: "text-embedding-3-small",
		ChunkSizeWords: 200,
		ChipCount:      2,
		CreatedAt:      base,
	}
	require.NoError(t, store.SaveRun(ctx, later))
	require.NoError(t, store.SaveRun(ctx, earlier))

	runs, err := store.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "small-200", runs[0].Name)
	assert.Equal(t, domain.ChipNone, runs[0].ChipPosition)
	assert.Equal(t, domain.ChipPrependAppend, runs[1].ChipPosition)
	assert.InDelta(t, 480.25, runs[1].AvgChunkWords, 1e-9)

	three := 3
	require.NoError(t, store.SaveResults(ctx, []domain.TestResult{
		{RunID: earlier.ID, Query: "q1", AnswerFound: true, AnswerRank: &three},
		{RunID: earlier.ID, Query: "q2", AnswerFound: true},
		{RunID: earlier.ID, Query: "q3"},
		{RunID: later.ID, Query: "q1"},
	}))

	results, err := store.ListResults(ctx, earlier.ID)
	require.NoError(t, err)
	require.Len(t, results, 3)

	var ranked int
	for _, r := range results {
		assert.Equal(t, earlier.ID, r.RunID)
		if r.AnswerRank != nil {
			ranked++
			assert.Equal(t, 3, *r.AnswerRank)
		}
	}
	assert.Equal(t, 1, ranked)
}

func TestStore_SaveRunIgnoresDuplicate(t *testing.T) {
	store, ctx := newTestStore(t)
	run := domain.TestRun{ID: uuid.New(), Name: "original", EmbeddingModel: "m", CreatedAt: time.Now()}

	require.NoError(t, store.SaveRun(ctx, run))
	run.Name = "changed"
	require.NoError(t, store.SaveRun(ctx, run))

	runs, err := store.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "original", runs[0].Name)
}

func TestStore_SaveResultsIgnoresDuplicate(t *testing.T) {
	store, ctx := newTestStore(t)
	run := domain.TestRun{ID: uuid.New(), Name: "small-200", EmbeddingModel: "m", CreatedAt: time.Now()}
	one := 1
	results := []domain.TestResult{
		{ID: uuid.New(), RunID: run.ID, Query: "q1", AnswerFound: true, AnswerRank: &one},
		{ID: uuid.New(), RunID: run.ID, Query: "q2"},
	}

	for range 2 {
		require.NoError(t, store.SaveRun(ctx, run))
		require.NoError(t, store.SaveResults(ctx, results))
	}

	got, err := store.ListResults(ctx, run.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestHealthChecker(t *testing.T) {
	store, ctx := newTestStore(t)

	assert.True(t, NewHealthChecker(store.pool).Healthy(ctx))
	assert.False(t, NewHealthChecker(nil).Healthy(ctx))
}
