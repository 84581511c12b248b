package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/chunk-bench/internal/analysis"
	"github.com/DjordjeVuckovic/chunk-bench/internal/evaluator"
	"github.com/DjordjeVuckovic/chunk-bench/pkg/utils"
)

const decimalPlaces = 4

type Report struct {
	Meta    ReportMeta    `json:"meta"`
	Best    RankedEntry   `json:"best"`
	Ranked  []RankedEntry `json:"ranked"`
	Impacts []ImpactTable `json:"impacts"`
	Models  []ImpactEntry `json:"models"`
}

type ReportMeta struct {
	Timestamp     time.Time       `json:"timestamp"`
	BaselineModel string          `json:"baseline_model"`
	RunCount      int             `json:"run_count"`
	Environment   EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

type RankedEntry struct {
	Position          int     `json:"position"`
	RunID             string  `json:"run_id"`
	Name              string  `json:"name"`
	EmbeddingModel    string  `json:"embedding_model"`
	ChunkSizeWords    int     `json:"chunk_size_words"`
	ChunkOverlapWords int     `json:"chunk_overlap_words"`
	ChipCount         int     `json:"chip_count"`
	ChipPosition      string  `json:"chip_position"`
	TotalChunks       int     `json:"total_chunks"`
	AvgChunkWords     float64 `json:"avg_chunk_words"`
	Found             int     `json:"found"`
	Total             int     `json:"total"`
	HitRate           float64 `json:"hit_rate"`
	// AvgRank is nil when no result of the run carried a rank.
	AvgRank *float64 `json:"avg_rank"`
	MRR     float64  `json:"mrr"`
}

type ImpactTable struct {
	Parameter string        `json:"parameter"`
	Rows      []ImpactEntry `json:"rows"`
}

type ImpactEntry struct {
	Value       string  `json:"value"`
	MeanFound   float64 `json:"mean_found"`
	SampleTotal int     `json:"sample_total"`
	Matches     int     `json:"matches"`
}

// Generate shapes an evaluation for output. topN limits the ranked list, 0 keeps all.
func Generate(ev *evaluator.Evaluation, topN int) *Report {
	r := &Report{
		Meta: ReportMeta{
			Timestamp:     ev.GeneratedAt,
			BaselineModel: ev.BaselineModel,
			RunCount:      len(ev.Ranked),
			Environment:   NewEnvironmentInfo(),
		},
		Best:   BestEntry(ev.Best),
		Models: ImpactEntries(ev.Models),
	}

	r.Ranked = RankedEntries(ev.Ranked, topN)
	for _, impact := range ev.Impacts {
		r.Impacts = append(r.Impacts, NewImpactTable(impact))
	}

	return r
}

// RankedEntries converts the first topN ranked analyses, 0 keeps all.
func RankedEntries(ranked []analysis.RunAnalysis, topN int) []RankedEntry {
	top := analysis.Top(ranked, topN)
	out := make([]RankedEntry, 0, len(top))
	for i, a := range top {
		out = append(out, toRankedEntry(i+1, a))
	}
	return out
}

func BestEntry(best analysis.RunAnalysis) RankedEntry {
	return toRankedEntry(1, best)
}

func NewImpactTable(impact analysis.ParameterImpact) ImpactTable {
	return ImpactTable{
		Parameter: impact.Parameter.String(),
		Rows:      ImpactEntries(impact.Rows),
	}
}

func toRankedEntry(position int, a analysis.RunAnalysis) RankedEntry {
	e := RankedEntry{
		Position:          position,
		RunID:             a.Run.ID.String(),
		Name:              a.Run.Name,
		EmbeddingModel:    a.Run.EmbeddingModel,
		ChunkSizeWords:    a.Run.ChunkSizeWords,
		ChunkOverlapWords: a.Run.ChunkOverlapWords,
		ChipCount:         a.Run.ChipCount,
		ChipPosition:      string(a.Run.ChipPosition),
		TotalChunks:       a.Run.TotalChunks,
		AvgChunkWords:     utils.RoundDecimal(a.Run.AvgChunkWords, 1),
		Found:             a.Found,
		Total:             a.Total,
		HitRate:           utils.RoundDecimal(a.HitRate(), decimalPlaces),
		MRR:               utils.RoundDecimal(a.MRR, decimalPlaces),
	}
	if a.HasRankData() {
		avg := utils.RoundDecimal(a.AvgRank, decimalPlaces)
		e.AvgRank = &avg
	}
	return e
}

func ImpactEntries(rows []analysis.ImpactRow) []ImpactEntry {
	out := make([]ImpactEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, ImpactEntry{
			Value:       row.Value,
			MeanFound:   utils.RoundDecimal(row.MeanFound, decimalPlaces),
			SampleTotal: row.SampleTotal,
			Matches:     row.Matches,
		})
	}
	return out
}
