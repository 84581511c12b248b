package pg

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/chunk-bench/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Writer struct {
	db *pgxpool.Pool
}

func NewWriter(pool *ConnectionPool) *Writer {
	return &Writer{db: pool.conn}
}

// SaveRun inserts a run. Runs are immutable, so an existing id is left untouched.
func (w *Writer) SaveRun(ctx context.Context, run domain.TestRun) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	if run.ChipPosition == "" {
		run.ChipPosition = domain.ChipNone
	}

	cmd := `
		INSERT INTO test_runs (id, name, embedding_model, chunk_size_words, chunk_overlap_words,
		                       chip_count, chip_position, total_chunks, avg_chunk_words, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := w.db.Exec(ctx, cmd,
		run.ID,
		run.Name,
		run.EmbeddingModel,
		run.ChunkSizeWords,
		run.ChunkOverlapWords,
		run.ChipCount,
		string(run.ChipPosition),
		run.TotalChunks,
		run.AvgChunkWords,
		run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert test run %q: %w", run.Name, err)
	}
	return nil
}

// SaveResults inserts results in one batch. Results already stored under the same id are kept,
// so importing a dataset twice leaves each run's result set unchanged.
func (w *Writer) SaveResults(ctx context.Context, results []domain.TestResult) error {
	if len(results) == 0 {
		return nil
	}

	cmd := `
		INSERT INTO test_results (id, run_id, query, answer_found, answer_rank)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`

	batch := &pgx.Batch{}
	for _, r := range results {
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		batch.Queue(cmd, r.ID, r.RunID, r.Query, r.AnswerFound, r.AnswerRank)
	}

	br := w.db.SendBatch(ctx, batch)
	var inserted int64
	for range results {
		tag, err := br.Exec()
		if err != nil {
			_ = br.Close()
			return fmt.Errorf("failed to insert test results: %w", err)
		}
		inserted += tag.RowsAffected()
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close test results batch: %w", err)
	}

	slog.Debug("Inserted test results into postgres", "rows", inserted, "skipped", int64(len(results))-inserted)
	return nil
}
