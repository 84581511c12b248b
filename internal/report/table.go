package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== RAG Configuration Evaluation ===\n\n")
	fmt.Fprintf(tw, "Runs evaluated: %d, baseline model: %s\n\n", r.Meta.RunCount, r.Meta.BaselineModel)

	writeBest(tw, r.Best)
	writeRankedTable(tw, r.Ranked)
	for _, it := range r.Impacts {
		writeImpactTable(tw, fmt.Sprintf("Impact of %s (%s runs only)", it.Parameter, r.Meta.BaselineModel), it.Parameter, it.Rows)
	}
	writeImpactTable(tw, "Embedding model comparison (all runs)", "embedding_model", r.Models)

	tw.Flush()
}

// WriteNoData prints the message shown when the store holds no runs.
func WriteNoData(w io.Writer) {
	fmt.Fprintln(w, "No test runs found: no data to evaluate.")
}

func writeBest(tw *tabwriter.Writer, b RankedEntry) {
	fmt.Fprintf(tw, "Best configuration: %s\n", b.Name)
	fmt.Fprintf(tw, "  model\t%s\n", b.EmbeddingModel)
	fmt.Fprintf(tw, "  chunk size / overlap\t%d / %d words\n", b.ChunkSizeWords, b.ChunkOverlapWords)
	fmt.Fprintf(tw, "  chips\t%d (%s)\n", b.ChipCount, b.ChipPosition)
	fmt.Fprintf(tw, "  found\t%d/%d (%s)\n", b.Found, b.Total, fmtPercent(b.HitRate))
	fmt.Fprintf(tw, "  avg rank\t%s\n", fmtRank(b.AvgRank))
	fmt.Fprintf(tw, "  mrr\t%.3f\n\n", b.MRR)
}

func writeRankedTable(tw *tabwriter.Writer, entries []RankedEntry) {
	fmt.Fprintf(tw, "Ranking (found desc, avg rank asc)\n\n")

	header := []string{"#", "Run", "Model", "Chunk", "Overlap", "Chips", "Position", "Chunks", "Avg Words", "Found", "Hit Rate", "Avg Rank", "MRR"}
	writeHeader(tw, header)

	for _, e := range entries {
		row := []string{
			fmt.Sprintf("%d", e.Position),
			e.Name,
			e.EmbeddingModel,
			fmt.Sprintf("%d", e.ChunkSizeWords),
			fmt.Sprintf("%d", e.ChunkOverlapWords),
			fmt.Sprintf("%d", e.ChipCount),
			e.ChipPosition,
			fmt.Sprintf("%d", e.TotalChunks),
			fmt.Sprintf("%.1f", e.AvgChunkWords),
			fmt.Sprintf("%d/%d", e.Found, e.Total),
			fmtPercent(e.HitRate),
			fmtRank(e.AvgRank),
			fmt.Sprintf("%.3f", e.MRR),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeImpactTable(tw *tabwriter.Writer, title, column string, rows []ImpactEntry) {
	fmt.Fprintf(tw, "%s\n\n", title)

	writeHeader(tw, []string{column, "Mean Found", "Of", "Runs"})

	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join([]string{
			row.Value,
			fmtMean(row),
			fmt.Sprintf("%d", row.SampleTotal),
			fmt.Sprintf("%d", row.Matches),
		}, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeHeader(tw *tabwriter.Writer, header []string) {
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}

func fmtRank(avg *float64) string {
	if avg == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *avg)
}

func fmtPercent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}

func fmtMean(row ImpactEntry) string {
	if row.Matches == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", row.MeanFound)
}
