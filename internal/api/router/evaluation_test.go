package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/chunk-bench/internal/apperr"
	"github.com/DjordjeVuckovic/chunk-bench/internal/config"
	"github.com/DjordjeVuckovic/chunk-bench/internal/domain"
	"github.com/DjordjeVuckovic/chunk-bench/internal/evaluator"
	"github.com/DjordjeVuckovic/chunk-bench/internal/report"
	"github.com/DjordjeVuckovic/chunk-bench/internal/storage/in_mem"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, store *in_mem.Store) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewEvaluationRouter(e, evaluator.New(store, config.Default()), WithDefaultTopN(5)).Bind()
	return e
}

func seedStore(t *testing.T) *in_mem.Store {
	t.Helper()
	ctx := context.Background()
	store := in_mem.NewStore()
	created := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

	add := func(name, model string, size, found, total int) {
		run := domain.TestRun{
			ID:             uuid.New(),
			Name:           name,
			EmbeddingModel: model,
			ChunkSizeWords: size,
			ChipPosition:   domain.ChipNone,
			CreatedAt:      created,
		}
		created = created.Add(time.Minute)
		require.NoError(t, store.SaveRun(ctx, run))

		var results []domain.TestResult
		for i := 0; i < total; i++ {
			results = append(results, domain.TestResult{
				RunID:       run.ID,
				Query:       fmt.Sprintf("q%d", i),
				AnswerFound: i < found,
			})
		}
		require.NoError(t, store.SaveResults(ctx, results))
	}

	add("small-200", config.DefaultBaselineModel, 200, 3, 10)
	add("small-500", config.DefaultBaselineModel, 500, 7, 10)
	add("large-500", config.DefaultLargeModel, 500, 9, 10)
	return store
}

func get(t *testing.T, e *echo.Echo, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestEvaluationRouter_Runs(t *testing.T) {
	e := newTestServer(t, seedStore(t))

	rec := get(t, e, "/runs?page=1&size=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var page RankedPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Items, 2)
	assert.Equal(t, 3, page.Total)
	assert.True(t, page.HasMore)
	assert.Equal(t, "large-500", page.Items[0].Name)
	assert.Equal(t, "small-500", page.Items[1].Name)
	assert.Nil(t, page.Items[0].AvgRank)

	rec = get(t, e, "/runs?page=2&size=2")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, 3, page.Items[0].Position, "positions are global, not per page")
	assert.False(t, page.HasMore)
}

func TestEvaluationRouter_Best(t *testing.T) {
	e := newTestServer(t, seedStore(t))

	rec := get(t, e, "/runs/best")
	require.Equal(t, http.StatusOK, rec.Code)

	var best report.RankedEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &best))
	assert.Equal(t, "large-500", best.Name)
	assert.Equal(t, 9, best.Found)
}

func TestEvaluationRouter_Impact(t *testing.T) {
	e := newTestServer(t, seedStore(t))

	rec := get(t, e, "/impact/chunk_size_words?values=500,%20200,800")
	require.Equal(t, http.StatusOK, rec.Code)

	var table report.ImpactTable
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &table))
	assert.Equal(t, "chunk_size_words", table.Parameter)
	assert.Equal(t, []report.ImpactEntry{
		{Value: "500", MeanFound: 7, SampleTotal: 10, Matches: 1},
		{Value: "200", MeanFound: 3, SampleTotal: 10, Matches: 1},
		{Value: "800", MeanFound: 0, SampleTotal: 0, Matches: 0},
	}, table.Rows)
}

func TestEvaluationRouter_Models(t *testing.T) {
	e := newTestServer(t, seedStore(t))

	rec := get(t, e, "/models")
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []report.ImpactEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, config.DefaultBaselineModel, rows[0].Value)
	assert.Equal(t, 5.0, rows[0].MeanFound)
	assert.Equal(t, 9.0, rows[1].MeanFound)
}

func TestEvaluationRouter_Report(t *testing.T) {
	e := newTestServer(t, seedStore(t))

	rec := get(t, e, "/report?top=0")
	require.Equal(t, http.StatusOK, rec.Code)

	var r report.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, 3, r.Meta.RunCount)
	assert.Len(t, r.Ranked, 3)
	assert.Len(t, r.Impacts, 4)
}

func TestEvaluationRouter_Errors(t *testing.T) {
	tests := []struct {
		name   string
		store  *in_mem.Store
		target string
		status int
	}{
		{name: "unknown parameter", store: seedStore(t), target: "/impact/temperature", status: http.StatusBadRequest},
		{name: "bad top", store: seedStore(t), target: "/report?top=-1", status: http.StatusBadRequest},
		{name: "bad page", store: seedStore(t), target: "/runs?page=first", status: http.StatusBadRequest},
		{name: "empty store", store: in_mem.NewStore(), target: "/runs/best", status: http.StatusNotFound},
		{name: "empty store report", store: in_mem.NewStore(), target: "/report", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, newTestServer(t, tt.store), tt.target)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
