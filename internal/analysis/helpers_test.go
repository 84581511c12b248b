package analysis

import (
	"time"

	"github.com/DjordjeVuckovic/chunk-bench/internal/domain"
	"github.com/google/uuid"
)

const (
	smallModel = "text-embedding-3-small"
	largeModel = "text-embedding-3-large"
)

func rank(v int) *int {
	return &v
}

func newRun(name string) domain.TestRun {
	return domain.TestRun{
		ID:                uuid.New(),
		Name:              name,
		EmbeddingModel:    smallModel,
		ChunkSizeWords:    300,
		ChunkOverlapWords: 50,
		ChipCount:         1,
		ChipPosition:      domain.ChipPrepend,
		CreatedAt:         time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func analysisOf(name string, found, total int, avgRank float64) RunAnalysis {
	ranked := 0
	if avgRank > 0 {
		ranked = found
	}
	return RunAnalysis{Run: newRun(name), Found: found, Total: total, AvgRank: avgRank, RankedCount: ranked}
}

func names(analyses []RunAnalysis) []string {
	out := make([]string, len(analyses))
	for i, a := range analyses {
		out[i] = a.Run.Name
	}
	return out
}
