package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/chunk-bench/internal/storage"
	"github.com/DjordjeVuckovic/chunk-bench/pkg/utils"
)

// ApplyEnv overrides file values with the environment, then re-validates.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("STORAGE_TYPE"); v != "" {
		c.Store.Type = storage.Type(v)
	}
	if v := os.Getenv("PG_CONNECTION_STRING"); v != "" {
		c.Store.PG.Connection = v
	}
	if v := os.Getenv("PG_MAX_CONNS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			slog.Warn("Ignoring invalid PG_MAX_CONNS", "value", v, "error", err)
		} else {
			c.Store.PG.MaxConns = int32(n)
		}
	}
	if v := os.Getenv("ES_ADDRESSES"); v != "" {
		c.Store.ES.Addresses = utils.SplitTrim(v, ",")
	}
	if v := os.Getenv("ES_USERNAME"); v != "" {
		c.Store.ES.Username = v
	}
	if v := os.Getenv("ES_PASSWORD"); v != "" {
		c.Store.ES.Password = v
	}
	if v := os.Getenv("ES_RUNS_INDEX"); v != "" {
		c.Store.ES.RunsIndex = v
	}
	if v := os.Getenv("ES_RESULTS_INDEX"); v != "" {
		c.Store.ES.ResultsIndex = v
	}
	if v := os.Getenv("FIXTURE_PATH"); v != "" {
		c.Store.InMem.Fixture = v
	}
	if v := os.Getenv("BASELINE_MODEL"); v != "" {
		c.Models.Baseline = v
	}
	if v := os.Getenv("LARGE_MODEL"); v != "" {
		c.Models.Large = v
	}

	return c.Validate()
}
