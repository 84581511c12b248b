package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/chunk-bench/internal/config"
	"github.com/DjordjeVuckovic/chunk-bench/internal/dataset"
	"github.com/DjordjeVuckovic/chunk-bench/internal/storage"
	"github.com/DjordjeVuckovic/chunk-bench/internal/storage/es"
	"github.com/DjordjeVuckovic/chunk-bench/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/chunk-bench/internal/storage/pg"
	pkgserver "github.com/DjordjeVuckovic/chunk-bench/pkg/server"
)

// Handle is an opened store together with its health checker and cleanup.
type Handle struct {
	Store   storage.ReadWriter
	Health  pkgserver.HealthChecker
	cleanup func()
}

func (h *Handle) Close() {
	if h.cleanup != nil {
		h.cleanup()
	}
}

// NewStore opens the store selected by cfg.Type.
func NewStore(ctx context.Context, cfg config.StoreConfig) (*Handle, error) {
	switch cfg.Type {
	case storage.PG:
		pool, err := pg.NewConnectionPool(ctx, pg.PoolConfig{
			ConnStr:  cfg.PG.Connection,
			MaxConns: cfg.PG.MaxConns,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		slog.Info("Using postgres store")
		return &Handle{
			Store:   pg.NewStore(pool),
			Health:  pg.NewHealthChecker(pool),
			cleanup: pool.Close,
		}, nil

	case storage.ES:
		store, err := es.NewStore(ctx, es.ClientConfig{
			Addresses:    cfg.ES.Addresses,
			Username:     cfg.ES.Username,
			Password:     cfg.ES.Password,
			RunsIndex:    cfg.ES.RunsIndex,
			ResultsIndex: cfg.ES.ResultsIndex,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Elasticsearch store: %w", err)
		}
		slog.Info("Using elasticsearch store", "addresses", cfg.ES.Addresses)
		return &Handle{Store: store, Health: es.NewHealthChecker(store)}, nil

	case storage.InMem:
		store := in_mem.NewStore()
		if cfg.InMem.Fixture != "" {
			d, err := dataset.LoadFromFile(cfg.InMem.Fixture)
			if err != nil {
				return nil, fmt.Errorf("failed to load fixture %s: %w", cfg.InMem.Fixture, err)
			}
			if err := Import(ctx, store, d); err != nil {
				return nil, err
			}
		}
		slog.Info("Using in-memory store", "fixture", cfg.InMem.Fixture)
		return &Handle{Store: store, Health: pkgserver.NewOkHealthChecker()}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}

// Import writes every run of d, then its results, to w.
func Import(ctx context.Context, w storage.Writer, d *dataset.Dataset) error {
	var results int
	for _, run := range d.Runs {
		if err := w.SaveRun(ctx, run.TestRun); err != nil {
			return fmt.Errorf("import run %q: %w", run.Name, err)
		}
		if err := w.SaveResults(ctx, run.Results); err != nil {
			return fmt.Errorf("import results of run %q: %w", run.Name, err)
		}
		results += len(run.Results)
	}

	slog.Info("Dataset imported", "name", d.Name, "runs", len(d.Runs), "results", results)
	return nil
}
