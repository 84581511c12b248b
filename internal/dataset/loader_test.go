package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/chunk-bench/internal/apperr"
	"github.com/DjordjeVuckovic/chunk-bench/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDataset = `
name: chunking-sweep
runs:
  - id: 6f1c1f0e-4a55-4c8e-9a77-0d1a6a0a0001
    name: small-200
    embedding_model: text-embedding-3-small
    chunk_size_words: 200
    chunk_overlap_words: 20
    chip_count: 2
    chip_position: prepend_append
    total_chunks: 140
    avg_chunk_words: 187.5
    results:
      - query: who signed the lease?
        answer_found: true
        answer_rank: 2
      - query: when does it expire?
        answer_found: true
      - query: what is the deposit?
        answer_found: false
  - name: small-500
    embedding_model: text-embedding-3-small
    chunk_size_words: 500
    results: []
`

func TestParse(t *testing.T) {
	t.Run("valid dataset", func(t *testing.T) {
		d, err := Parse([]byte(validDataset))
		require.NoError(t, err)

		assert.Equal(t, "chunking-sweep", d.Name)
		require.Len(t, d.Runs, 2)

		first := d.Runs[0]
		assert.Equal(t, uuid.MustParse("6f1c1f0e-4a55-4c8e-9a77-0d1a6a0a0001"), first.ID)
		assert.Equal(t, domain.ChipPrependAppend, first.ChipPosition)
		assert.Equal(t, 200, first.ChunkSizeWords)
		assert.InDelta(t, 187.5, first.AvgChunkWords, 1e-9)
		require.Len(t, first.Results, 3)
		require.NotNil(t, first.Results[0].AnswerRank)
		assert.Equal(t, 2, *first.Results[0].AnswerRank)
		assert.Nil(t, first.Results[1].AnswerRank)
		assert.True(t, first.Results[1].AnswerFound)
		for _, r := range first.Results {
			assert.Equal(t, first.ID, r.RunID)
			assert.NotEqual(t, uuid.Nil, r.ID)
		}

		second := d.Runs[1]
		assert.NotEqual(t, uuid.Nil, second.ID)
		assert.True(t, second.CreatedAt.After(first.CreatedAt))
		assert.Len(t, d.AllResults(), 3)
	})

	t.Run("no runs", func(t *testing.T) {
		_, err := Parse([]byte("name: empty\nruns: []\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no runs")
	})

	t.Run("duplicate run id", func(t *testing.T) {
		yaml := `
runs:
  - id: 6f1c1f0e-4a55-4c8e-9a77-0d1a6a0a0001
    name: a
    embedding_model: m
  - id: 6f1c1f0e-4a55-4c8e-9a77-0d1a6a0a0001
    name: b
    embedding_model: m
`
		_, err := Parse([]byte(yaml))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate run id")
	})

	t.Run("non-positive rank", func(t *testing.T) {
		yaml := `
runs:
  - name: a
    embedding_model: m
    results:
      - query: q
        answer_found: true
        answer_rank: 0
`
		_, err := Parse([]byte(yaml))

		var ve *apperr.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Contains(t, ve.Message, "non-positive answer_rank")
	})

	t.Run("missing model", func(t *testing.T) {
		_, err := Parse([]byte("runs:\n  - name: a\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no embedding_model")
	})

	t.Run("unknown key", func(t *testing.T) {
		yaml := `
runs:
  - name: a
    embedding_model: m
    results:
      - query: q
        answer_found: true
        answer_rnak: 2
`
		_, err := Parse([]byte(yaml))

		var ve *apperr.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Contains(t, ve.Message, "does not match schema")
	})

	t.Run("unknown chip position is kept", func(t *testing.T) {
		d, err := Parse([]byte(`
runs:
  - name: a
    embedding_model: m
    chip_position: sandwich
`))
		require.NoError(t, err)
		assert.Equal(t, domain.ChipPosition("sandwich"), d.Runs[0].ChipPosition)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("runs: ["))
		require.Error(t, err)
	})
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validDataset), 0o644))

	d, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Len(t, d.Runs, 2)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFile_SampleFixture(t *testing.T) {
	d, err := LoadFromFile(filepath.Join("..", "..", "configs", "fixtures", "sample_runs.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "sample-retrieval-sweep", d.Name)
	assert.Len(t, d.Runs, 6)
	assert.Len(t, d.AllResults(), 60)
	for _, r := range d.Runs {
		for _, res := range r.Results {
			assert.Equal(t, r.ID, res.RunID)
		}
	}
}
