// Package main Chunk Bench API
// @title Chunk Bench API
// @version 1.0
// @description Scores and ranks retrieval configurations recorded against a fixed query set
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	_ "github.com/DjordjeVuckovic/chunk-bench/docs"
	"github.com/DjordjeVuckovic/chunk-bench/internal/api/router"
	"github.com/DjordjeVuckovic/chunk-bench/internal/api/server"
	"github.com/DjordjeVuckovic/chunk-bench/internal/config"
	"github.com/DjordjeVuckovic/chunk-bench/internal/evaluator"
	"github.com/DjordjeVuckovic/chunk-bench/internal/storage/factory"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	store, err := factory.NewStore(context.Background(), cfg.Store)
	if err != nil {
		slog.Error("Failed to create store", "error", err)
		os.Exit(1)
	}

	s := server.New(sCfg, store.Health).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Chunk Bench API is running")
	})

	router.NewEvaluationRouter(s.Echo, evaluator.New(store.Store, cfg), router.WithDefaultTopN(cfg.TopN)).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	store.Close()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
