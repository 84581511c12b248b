package analysis

import (
	"strconv"

	"github.com/DjordjeVuckovic/chunk-bench/internal/apperr"
	"github.com/DjordjeVuckovic/chunk-bench/internal/domain"
)

// Parameter is a TestRun configuration attribute that runs can be grouped by.
type Parameter string

const (
	ParamChunkSize      Parameter = "chunk_size_words"
	ParamChunkOverlap   Parameter = "chunk_overlap_words"
	ParamChipCount      Parameter = "chip_count"
	ParamChipPosition   Parameter = "chip_position"
	ParamEmbeddingModel Parameter = "embedding_model"
)

// Parameters lists every groupable parameter in display order.
var Parameters = []Parameter{
	ParamChunkSize,
	ParamChunkOverlap,
	ParamChipCount,
	ParamChipPosition,
	ParamEmbeddingModel,
}

var extractors = map[Parameter]func(domain.TestRun) string{
	ParamChunkSize:      func(r domain.TestRun) string { return strconv.Itoa(r.ChunkSizeWords) },
	ParamChunkOverlap:   func(r domain.TestRun) string { return strconv.Itoa(r.ChunkOverlapWords) },
	ParamChipCount:      func(r domain.TestRun) string { return strconv.Itoa(r.ChipCount) },
	ParamChipPosition:   func(r domain.TestRun) string { return string(r.ChipPosition) },
	ParamEmbeddingModel: func(r domain.TestRun) string { return r.EmbeddingModel },
}

// ParseParameter resolves a parameter key, failing with an InvalidParameterError for unknown keys.
func ParseParameter(key string) (Parameter, error) {
	p := Parameter(key)
	if _, ok := extractors[p]; !ok {
		return "", apperr.NewInvalidParameter(key)
	}
	return p, nil
}

// Value returns the canonical string form of the run's value for p.
func (p Parameter) Value(run domain.TestRun) (string, error) {
	extract, ok := extractors[p]
	if !ok {
		return "", apperr.NewInvalidParameter(string(p))
	}
	return extract(run), nil
}

func (p Parameter) String() string {
	return string(p)
}
