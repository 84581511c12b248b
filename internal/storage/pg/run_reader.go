package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/chunk-bench/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const listRunsSQL = `
	SELECT id, name, embedding_model, chunk_size_words, chunk_overlap_words,
	       chip_count, chip_position, total_chunks, avg_chunk_words, created_at
	FROM test_runs
	ORDER BY created_at ASC, id ASC
`

const listResultsSQL = `
	SELECT id, run_id, query, answer_found, answer_rank
	FROM test_results
	WHERE run_id = $1
`

type Reader struct {
	db *pgxpool.Pool
}

func NewReader(pool *ConnectionPool) *Reader {
	return &Reader{db: pool.conn}
}

func (r *Reader) ListRuns(ctx context.Context) ([]domain.TestRun, error) {
	rows, err := r.db.Query(ctx, listRunsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query test runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.TestRun
	for rows.Next() {
		var run domain.TestRun
		var chipPosition string

		if err := rows.Scan(
			&run.ID,
			&run.Name,
			&run.EmbeddingModel,
			&run.ChunkSizeWords,
			&run.ChunkOverlapWords,
			&run.ChipCount,
			&chipPosition,
			&run.TotalChunks,
			&run.AvgChunkWords,
			&run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan test run: %w", err)
		}
		run.ChipPosition = domain.ChipPosition(chipPosition)
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating test runs: %w", err)
	}

	slog.Debug("Fetched test runs from postgres", "count", len(runs))
	return runs, nil
}

func (r *Reader) ListResults(ctx context.Context, runID uuid.UUID) ([]domain.TestResult, error) {
	rows, err := r.db.Query(ctx, listResultsSQL, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results for run %s: %w", runID, err)
	}
	defer rows.Close()

	var results []domain.TestResult
	for rows.Next() {
		var res domain.TestResult
		if err := rows.Scan(&res.ID, &res.RunID, &res.Query, &res.AnswerFound, &res.AnswerRank); err != nil {
			return nil, fmt.Errorf("failed to scan test result: %w", err)
		}
		results = append(results, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating test results: %w", err)
	}

	return results, nil
}
