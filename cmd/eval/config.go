package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"
)

type cliConfig struct {
	Mode       string
	ConfigPath string
	InputPath  string
	Output     string
	Storage    string
	TopN       int
	LogLevel   string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.Mode, "mode", "report", "Run mode: report, import, or schema")
	flag.StringVar(&cfg.ConfigPath, "config", "", "Path to evaluation config YAML (defaults are used when empty)")
	flag.StringVar(&cfg.InputPath, "input", "", "Path to dataset YAML (import mode)")
	flag.StringVar(&cfg.Output, "output", "", "Output path: JSON report file (report mode) or schema directory (schema mode)")
	flag.StringVar(&cfg.Storage, "storage", "", "Storage type override: pg, es, or in_mem")
	flag.IntVar(&cfg.TopN, "top", -1, "Number of ranked runs to print, 0 for all (defaults to config top_n)")
	flag.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, or error")

	flag.Parse()
	return cfg
}

func (c cliConfig) parseLogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// topN resolves the -top flag against the configured default.
func (c cliConfig) topN(configured int) int {
	if c.TopN < 0 {
		return configured
	}
	return c.TopN
}
