package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChipPosition is where metadata tags ("chips") are injected into a chunk.
type ChipPosition string

const (
	ChipPrepend       ChipPosition = "prepend"
	ChipPrependAppend ChipPosition = "prepend_append"
	ChipAppend        ChipPosition = "append"
	ChipNone          ChipPosition = "none"
)

var KnownChipPositions = map[ChipPosition]bool{
	ChipPrepend:       true,
	ChipPrependAppend: true,
	ChipAppend:        true,
	ChipNone:          true,
}

// TestRun is one evaluated retrieval configuration.
// Runs are written once when an experiment executes and are read-only afterwards.
type TestRun struct {
	ID                uuid.UUID    `json:"id" yaml:"id"`
	Name              string       `json:"name" yaml:"name" jsonschema:"required"`
	EmbeddingModel    string       `json:"embedding_model" yaml:"embedding_model" jsonschema:"required"`
	ChunkSizeWords    int          `json:"chunk_size_words" yaml:"chunk_size_words"`
	ChunkOverlapWords int          `json:"chunk_overlap_words" yaml:"chunk_overlap_words"`
	ChipCount         int          `json:"chip_count" yaml:"chip_count"`
	ChipPosition      ChipPosition `json:"chip_position" yaml:"chip_position" jsonschema:"default=none,example=prepend,example=prepend_append,example=append,example=none"`
	TotalChunks       int          `json:"total_chunks" yaml:"total_chunks"`
	AvgChunkWords     float64      `json:"avg_chunk_words" yaml:"avg_chunk_words"`
	CreatedAt         time.Time    `json:"created_at" yaml:"created_at"`
}
