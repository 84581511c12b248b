package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/chunk-bench/internal/apperr"
	"github.com/DjordjeVuckovic/chunk-bench/internal/config"
	"github.com/DjordjeVuckovic/chunk-bench/internal/dataset"
	"github.com/DjordjeVuckovic/chunk-bench/internal/evaluator"
	"github.com/DjordjeVuckovic/chunk-bench/internal/report"
	"github.com/DjordjeVuckovic/chunk-bench/internal/storage"
	"github.com/DjordjeVuckovic/chunk-bench/internal/storage/factory"
	"github.com/DjordjeVuckovic/chunk-bench/pkg/config/env"
	"github.com/DjordjeVuckovic/chunk-bench/pkg/schema"
)

func main() {
	cfg := parseFlags()
	ctx := context.Background()

	level, err := cfg.parseLogLevel()
	if err != nil {
		slog.Error("Invalid flags", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(level)

	switch cfg.Mode {
	case "report":
		runReport(ctx, cfg)
	case "import":
		runImport(ctx, cfg)
	case "schema":
		runSchema(cfg)
	default:
		slog.Error("Unknown mode", "mode", cfg.Mode)
		os.Exit(1)
	}
}

func loadAppConfig(cfg cliConfig) *config.Config {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/eval/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	if cfg.Storage != "" {
		if err := os.Setenv("STORAGE_TYPE", cfg.Storage); err != nil {
			slog.Error("Failed to apply storage override", "error", err)
			os.Exit(1)
		}
	}

	appCfg, err := config.Load(cfg.ConfigPath)
	if err != nil {
		slog.Error("Failed to load config", "path", cfg.ConfigPath, "error", err)
		os.Exit(1)
	}
	return appCfg
}

func runReport(ctx context.Context, cfg cliConfig) {
	appCfg := loadAppConfig(cfg)

	store, err := factory.NewStore(ctx, appCfg.Store)
	if err != nil {
		slog.Error("Failed to open store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ev, err := evaluator.New(store.Store, appCfg).Evaluate(ctx)
	if errors.Is(err, apperr.ErrEmptyInput) {
		report.WriteNoData(os.Stdout)
		return
	}
	if err != nil {
		slog.Error("Evaluation failed", "error", err)
		store.Close()
		os.Exit(1)
	}

	outputReport(report.Generate(ev, cfg.topN(appCfg.TopN)), cfg.Output)
}

func outputReport(rpt *report.Report, outputPath string) {
	report.WriteTable(rpt, os.Stdout)

	if outputPath != "" {
		if err := report.WriteJSON(rpt, outputPath); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			os.Exit(1)
		}
		slog.Info("Report written", "path", outputPath)
	}
}

func runImport(ctx context.Context, cfg cliConfig) {
	if cfg.InputPath == "" {
		slog.Error("Import mode requires --input")
		os.Exit(1)
	}

	appCfg := loadAppConfig(cfg)
	if appCfg.Store.Type == storage.InMem {
		slog.Warn("Importing into the in-memory store, data is discarded on exit")
	}

	d, err := dataset.LoadFromFile(cfg.InputPath)
	if err != nil {
		slog.Error("Failed to load dataset", "path", cfg.InputPath, "error", err)
		os.Exit(1)
	}

	store, err := factory.NewStore(ctx, appCfg.Store)
	if err != nil {
		slog.Error("Failed to open store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := factory.Import(ctx, store.Store, d); err != nil {
		slog.Error("Import failed", "error", err)
		store.Close()
		os.Exit(1)
	}
}

func runSchema(cfg cliConfig) {
	outDir := cfg.Output
	if outDir == "" {
		outDir = "schemas"
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		slog.Error("Failed to create output directory", "error", err)
		os.Exit(1)
	}

	targets := map[string]any{
		"config.schema.json":  &config.Config{},
		"dataset.schema.json": &dataset.Dataset{},
	}

	for name, v := range targets {
		out, err := schema.GenerateJSONSchema(v)
		if err != nil {
			slog.Error("Failed to generate schema", "file", name, "error", err)
			os.Exit(1)
		}

		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
			slog.Error("Failed to write schema", "path", path, "error", err)
			os.Exit(1)
		}
		slog.Info("Schema written", "path", path)
	}
}
