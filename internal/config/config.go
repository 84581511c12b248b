package config

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/chunk-bench/internal/analysis"
	"github.com/DjordjeVuckovic/chunk-bench/internal/apperr"
	"github.com/DjordjeVuckovic/chunk-bench/internal/storage"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaselineModel    = "text-embedding-3-small"
	DefaultLargeModel       = "text-embedding-3-large"
	DefaultFetchConcurrency = 4
	DefaultTopN             = 5
)

// Config is everything an evaluation needs. It is built once at startup and
// passed down explicitly.
type Config struct {
	Store            StoreConfig      `yaml:"store"`
	Models           ModelsConfig     `yaml:"models"`
	Parameters       []ParameterSweep `yaml:"parameters"`
	FetchConcurrency int              `yaml:"fetch_concurrency"`
	TopN             int              `yaml:"top_n"`
}

type StoreConfig struct {
	Type  storage.Type `yaml:"type" jsonschema:"enum=pg,enum=es,enum=in_mem,default=in_mem"`
	PG    PGConfig     `yaml:"pg"`
	ES    ESConfig     `yaml:"es"`
	InMem InMemConfig  `yaml:"in_mem"`
}

type PGConfig struct {
	Connection string `yaml:"connection"`
	MaxConns   int32  `yaml:"max_conns"`
}

type ESConfig struct {
	Addresses    []string `yaml:"addresses"`
	Username     string   `yaml:"username"`
	Password     string   `yaml:"password"`
	RunsIndex    string   `yaml:"runs_index"`
	ResultsIndex string   `yaml:"results_index"`
}

type InMemConfig struct {
	// Fixture is an optional dataset file loaded into the store at startup.
	Fixture string `yaml:"fixture"`
}

// ModelsConfig names the two embedding models under comparison. Impact analysis
// only looks at Baseline runs.
type ModelsConfig struct {
	Baseline string `yaml:"baseline" jsonschema:"default=text-embedding-3-small"`
	Large    string `yaml:"large" jsonschema:"default=text-embedding-3-large"`
}

// ParameterSweep lists the candidate values reported for one parameter.
// Empty Values means every value present among baseline runs.
type ParameterSweep struct {
	Key    string   `yaml:"key" jsonschema:"required,enum=chunk_size_words,enum=chunk_overlap_words,enum=chip_count,enum=chip_position,enum=embedding_model"`
	Values []string `yaml:"values"`
}

func Default() *Config {
	return &Config{
		Store: StoreConfig{Type: storage.InMem},
		Models: ModelsConfig{
			Baseline: DefaultBaselineModel,
			Large:    DefaultLargeModel,
		},
		Parameters: []ParameterSweep{
			{Key: string(analysis.ParamChunkSize)},
			{Key: string(analysis.ParamChunkOverlap)},
			{Key: string(analysis.ParamChipCount)},
			{Key: string(analysis.ParamChipPosition)},
		},
		FetchConcurrency: DefaultFetchConcurrency,
		TopN:             DefaultTopN,
	}
}

// Load reads path, or starts from Default when path is empty, and applies
// environment overrides on top.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperr.NewValidationWrap("parse config YAML", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Type {
	case storage.PG:
		if c.Store.PG.Connection == "" {
			return apperr.NewValidation("postgres store requires a connection string")
		}
	case storage.ES:
		if len(c.Store.ES.Addresses) == 0 {
			return apperr.NewValidation("elasticsearch store requires at least one address")
		}
	case storage.InMem:
	default:
		return apperr.NewValidation(fmt.Sprintf("invalid store type %q, expected one of %v", c.Store.Type, storage.SupportedTypes))
	}

	if c.Models.Baseline == "" {
		return apperr.NewValidation("baseline model is not set")
	}
	if c.Models.Large == c.Models.Baseline {
		return apperr.NewValidation("large model must differ from the baseline model")
	}

	for i, p := range c.Parameters {
		if _, err := analysis.ParseParameter(p.Key); err != nil {
			return apperr.NewValidationWrap(fmt.Sprintf("parameter at index %d", i), err)
		}
	}

	if c.FetchConcurrency <= 0 {
		c.FetchConcurrency = DefaultFetchConcurrency
	}
	if c.TopN < 0 {
		return apperr.NewValidation("top_n must not be negative")
	}
	return nil
}

// ModelNames returns the configured models, baseline first.
func (c *Config) ModelNames() []string {
	if c.Models.Large == "" {
		return []string{c.Models.Baseline}
	}
	return []string{c.Models.Baseline, c.Models.Large}
}
