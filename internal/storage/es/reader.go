package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/chunk-bench/internal/domain"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

// maxHits is the default index.max_result_window; run and result counts stay far below it.
const maxHits = 10000

type Reader struct {
	client       *elasticsearch.TypedClient
	runsIndex    string
	resultsIndex string
}

func NewReader(config ClientConfig) (*Reader, error) {
	config = config.withDefaults()

	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Reader{
		client:       client,
		runsIndex:    config.RunsIndex,
		resultsIndex: config.ResultsIndex,
	}, nil
}

func (r *Reader) ListRuns(ctx context.Context) ([]domain.TestRun, error) {
	asc := sortorder.Asc

	res, err := r.client.Search().
		Index(r.runsIndex).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		Sort(
			&types.SortOptions{SortOptions: map[string]types.FieldSort{"created_at": {Order: &asc}}},
			&types.SortOptions{SortOptions: map[string]types.FieldSort{"id": {Order: &asc}}},
		).
		Size(maxHits).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search test runs: %w", err)
	}

	runs, err := decodeHits[domain.TestRun](res.Hits.Hits)
	if err != nil {
		return nil, fmt.Errorf("failed to decode test runs: %w", err)
	}

	slog.Debug("Fetched test runs from elasticsearch", "index", r.runsIndex, "count", len(runs))
	return runs, nil
}

func (r *Reader) ListResults(ctx context.Context, runID uuid.UUID) ([]domain.TestResult, error) {
	res, err := r.client.Search().
		Index(r.resultsIndex).
		Query(&types.Query{
			Term: map[string]types.TermQuery{
				"run_id": {Value: runID.String()},
			},
		}).
		Size(maxHits).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search results for run %s: %w", runID, err)
	}

	results, err := decodeHits[domain.TestResult](res.Hits.Hits)
	if err != nil {
		return nil, fmt.Errorf("failed to decode results for run %s: %w", runID, err)
	}
	return results, nil
}

func decodeHits[T any](hits []types.Hit) ([]T, error) {
	out := make([]T, 0, len(hits))
	for _, hit := range hits {
		var doc T
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}
