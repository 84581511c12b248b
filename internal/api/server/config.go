package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/chunk-bench/pkg/config/env"
	"github.com/DjordjeVuckovic/chunk-bench/pkg/utils"
)

const (
	defaultPort            = "8080"
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	Port            string
	UseHttp2        bool
	CorsOrigins     []string
	ShutdownTimeout time.Duration
}

// LoadConfig reads the HTTP settings from the environment, after loading the
// optional .env file next to the API binary.
func LoadConfig() (*Config, error) {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/eval_api/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	return configFromEnv()
}

func configFromEnv() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := utils.SplitTrim(os.Getenv("CORS_ORIGINS"), ",")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	timeout := defaultShutdownTimeout
	if raw := os.Getenv("SHUTDOWN_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", raw, err)
		}
		timeout = d
	}

	return &Config{
		Port:            port,
		UseHttp2:        os.Getenv("USE_HTTP2") == "true",
		CorsOrigins:     origins,
		ShutdownTimeout: timeout,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
