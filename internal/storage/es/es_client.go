package es

import (
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
)

const (
	DefaultRunsIndex    = "test_runs"
	DefaultResultsIndex = "test_results"
)

type ClientConfig struct {
	Addresses    []string
	Username     string
	Password     string
	RunsIndex    string
	ResultsIndex string
}

func (c ClientConfig) withDefaults() ClientConfig {
	if c.RunsIndex == "" {
		c.RunsIndex = DefaultRunsIndex
	}
	if c.ResultsIndex == "" {
		c.ResultsIndex = DefaultResultsIndex
	}
	return c
}

func newClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	if len(config.Addresses) == 0 {
		return nil, fmt.Errorf("elasticsearch addresses are not configured")
	}

	cfg := elasticsearch.Config{
		Addresses: config.Addresses,
	}

	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	return elasticsearch.NewTypedClient(cfg)
}
