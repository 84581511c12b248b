package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/chunk-bench/internal/analysis"
	"github.com/DjordjeVuckovic/chunk-bench/internal/domain"
	"github.com/DjordjeVuckovic/chunk-bench/internal/evaluator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvaluation() *evaluator.Evaluation {
	run := func(name string, size int) domain.TestRun {
		return domain.TestRun{
			ID:             uuid.New(),
			Name:           name,
			EmbeddingModel: "text-embedding-3-small",
			ChunkSizeWords: size,
			ChipPosition:   domain.ChipPrepend,
			AvgChunkWords:  float64(size) - 12.34,
		}
	}

	ranked := []analysis.RunAnalysis{
		{Run: run("best", 500), Found: 8, Total: 10, AvgRank: 4.0 / 3.0, RankedCount: 3},
		{Run: run("unranked", 200), Found: 6, Total: 10},
		{Run: run("worst", 800), Found: 2, Total: 10, AvgRank: 3, RankedCount: 2},
	}

	return &evaluator.Evaluation{
		GeneratedAt:   time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		BaselineModel: "text-embedding-3-small",
		Ranked:        ranked,
		Best:          ranked[0],
		Impacts: []analysis.ParameterImpact{{
			Parameter: analysis.ParamChunkSize,
			Rows: []analysis.ImpactRow{
				{Value: "200", MeanFound: 6, SampleTotal: 10, Matches: 1},
				{Value: "300", MeanFound: 0, SampleTotal: 0, Matches: 0},
			},
		}},
		Models: []analysis.ImpactRow{{Value: "text-embedding-3-small", MeanFound: 16.0 / 3.0, SampleTotal: 10, Matches: 3}},
	}
}

func TestGenerate(t *testing.T) {
	r := Generate(sampleEvaluation(), 2)

	assert.Equal(t, 3, r.Meta.RunCount)
	require.Len(t, r.Ranked, 2)
	assert.Equal(t, 1, r.Ranked[0].Position)
	assert.Equal(t, "best", r.Best.Name)
	require.NotNil(t, r.Best.AvgRank)
	assert.InDelta(t, 1.3333, *r.Best.AvgRank, 1e-9)
	assert.InDelta(t, 0.8, r.Best.HitRate, 1e-9)
	assert.Nil(t, r.Ranked[1].AvgRank, "sentinel average is reported as missing")
	assert.InDelta(t, 5.3333, r.Models[0].MeanFound, 1e-9)
	require.Len(t, r.Impacts, 1)
	assert.Equal(t, "chunk_size_words", r.Impacts[0].Parameter)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(Generate(sampleEvaluation(), 0), &buf)
	out := buf.String()

	assert.Contains(t, out, "Best configuration: best")
	assert.Contains(t, out, "8/10 (80.0%)")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "Impact of chunk_size_words")
	assert.Contains(t, out, "Embedding model comparison")
	assert.Contains(t, out, "worst")
}

func TestWriteNoData(t *testing.T) {
	var buf bytes.Buffer
	WriteNoData(&buf)
	assert.Contains(t, buf.String(), "no data")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSON(Generate(sampleEvaluation(), 0), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.Ranked, 3)
	assert.Equal(t, "text-embedding-3-small", decoded.Meta.BaselineModel)
}
