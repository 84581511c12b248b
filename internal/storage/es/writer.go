package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/chunk-bench/internal/domain"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/google/uuid"
)

type Writer struct {
	client       *elasticsearch.TypedClient
	runsIndex    string
	resultsIndex string
}

// NewWriter creates the runs and results indices when they are missing.
func NewWriter(ctx context.Context, config ClientConfig) (*Writer, error) {
	config = config.withDefaults()

	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	w := &Writer{
		client:       client,
		runsIndex:    config.RunsIndex,
		resultsIndex: config.ResultsIndex,
	}

	if err := w.ensureIndex(ctx, w.runsIndex, runsMapping()); err != nil {
		return nil, err
	}
	if err := w.ensureIndex(ctx, w.resultsIndex, resultsMapping()); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Writer) SaveRun(ctx context.Context, run domain.TestRun) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	res, err := w.client.Index(w.runsIndex).
		Id(run.ID.String()).
		Document(run).
		Refresh(refresh.True).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index test run %q: %w", run.Name, err)
	}

	slog.Debug("Test run indexed", "id", run.ID, "index", w.runsIndex, "result", res.Result)
	return nil
}

func (w *Writer) SaveResults(ctx context.Context, results []domain.TestResult) error {
	if len(results) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         w.resultsIndex,
		Client:        w.client,
		NumWorkers:    2,
		FlushBytes:    5e+6,
		FlushInterval: 30 * time.Second,
		Refresh:       "wait_for",
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var failed atomic.Int64

	for _, r := range results {
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}

		body, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal test result %s: %w", r.ID, err)
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: r.ID.String(),
			Body:       bytes.NewReader(body),
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("Bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("Bulk index error", "status", res.Status, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			return fmt.Errorf("failed to add test result to bulk indexer: %w", err)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	stats := bi.Stats()
	slog.Debug("Bulk indexed test results", "indexed", stats.NumIndexed, "failed", stats.NumFailed, "index", w.resultsIndex)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d test results", n, len(results))
	}
	return nil
}

func (w *Writer) ensureIndex(ctx context.Context, index string, mapping types.TypeMapping) error {
	exists, err := w.client.Indices.Exists(index).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index %s exists: %w", index, err)
	}
	if exists {
		return nil
	}

	res, err := w.client.Indices.Create(index).Mappings(&mapping).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index %s: %w", index, err)
	}
	if !res.Acknowledged {
		return fmt.Errorf("creation of index %s was not acknowledged", index)
	}

	slog.Info("Index created", "index", index)
	return nil
}
