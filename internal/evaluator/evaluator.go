package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/chunk-bench/internal/analysis"
	"github.com/DjordjeVuckovic/chunk-bench/internal/apperr"
	"github.com/DjordjeVuckovic/chunk-bench/internal/config"
	"github.com/DjordjeVuckovic/chunk-bench/internal/domain"
	"github.com/DjordjeVuckovic/chunk-bench/internal/storage"
	"golang.org/x/sync/errgroup"
)

// Evaluation is the outcome of one analysis pass over the store.
type Evaluation struct {
	GeneratedAt   time.Time                  `json:"generated_at"`
	BaselineModel string                     `json:"baseline_model"`
	Ranked        []analysis.RunAnalysis     `json:"ranked"`
	Best          analysis.RunAnalysis       `json:"best"`
	Impacts       []analysis.ParameterImpact `json:"impacts"`
	Models        []analysis.ImpactRow       `json:"models"`
}

type Evaluator struct {
	reader   storage.Reader
	cfg      *config.Config
	analyzer *analysis.ImpactAnalyzer
	now      func() time.Time
}

func New(reader storage.Reader, cfg *config.Config) *Evaluator {
	return &Evaluator{
		reader:   reader,
		cfg:      cfg,
		analyzer: analysis.NewImpactAnalyzer(cfg.Models.Baseline),
		now:      time.Now,
	}
}

// Analyze computes metrics for every run, in store order (creation ascending).
// It fails with apperr.ErrEmptyInput when the store holds no runs.
func (e *Evaluator) Analyze(ctx context.Context) ([]analysis.RunAnalysis, error) {
	runs, err := e.reader.ListRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("no test runs recorded: %w", apperr.ErrEmptyInput)
	}

	results, err := e.fetchResults(ctx, runs)
	if err != nil {
		return nil, err
	}

	analyses := make([]analysis.RunAnalysis, len(runs))
	for i, run := range runs {
		analyses[i] = analysis.ComputeMetrics(run, results[i])
	}

	slog.Info("Computed run metrics", "runs", len(analyses))
	return analyses, nil
}

// Evaluate ranks every run, selects the best one and builds the configured
// parameter impact tables and the model comparison.
func (e *Evaluator) Evaluate(ctx context.Context) (*Evaluation, error) {
	analyses, err := e.Analyze(ctx)
	if err != nil {
		return nil, err
	}

	ranked := analysis.Rank(analyses)
	best, err := analysis.Best(ranked)
	if err != nil {
		return nil, err
	}

	ev := &Evaluation{
		GeneratedAt:   e.now().UTC(),
		BaselineModel: e.cfg.Models.Baseline,
		Ranked:        ranked,
		Best:          best,
		Models:        e.analyzer.CompareModels(analyses, e.cfg.ModelNames()),
	}

	for _, sweep := range e.cfg.Parameters {
		impact, err := e.impact(analyses, sweep.Key, sweep.Values)
		if err != nil {
			return nil, err
		}
		ev.Impacts = append(ev.Impacts, impact)
	}

	slog.Info("Evaluation complete",
		"runs", len(ranked),
		"best", best.Run.Name,
		"best_found", best.Found,
		"best_avg_rank", best.AvgRank)
	return ev, nil
}

// Impact computes a single parameter table. Empty values means every value
// present among baseline runs.
func (e *Evaluator) Impact(ctx context.Context, key string, values []string) (analysis.ParameterImpact, error) {
	if _, err := analysis.ParseParameter(key); err != nil {
		return analysis.ParameterImpact{}, err
	}

	analyses, err := e.Analyze(ctx)
	if err != nil {
		return analysis.ParameterImpact{}, err
	}
	return e.impact(analyses, key, values)
}

// CompareModels returns the mean Found per configured embedding model.
func (e *Evaluator) CompareModels(ctx context.Context) ([]analysis.ImpactRow, error) {
	analyses, err := e.Analyze(ctx)
	if err != nil {
		return nil, err
	}
	return e.analyzer.CompareModels(analyses, e.cfg.ModelNames()), nil
}

func (e *Evaluator) impact(analyses []analysis.RunAnalysis, key string, values []string) (analysis.ParameterImpact, error) {
	param, err := analysis.ParseParameter(key)
	if err != nil {
		return analysis.ParameterImpact{}, err
	}

	if len(values) == 0 {
		values, err = discoverValues(analysis.FilterByModel(analyses, e.cfg.Models.Baseline), param)
		if err != nil {
			return analysis.ParameterImpact{}, err
		}
	}

	rows, err := e.analyzer.ImpactOf(analyses, param, values)
	if err != nil {
		return analysis.ParameterImpact{}, err
	}
	return analysis.ParameterImpact{Parameter: param, Rows: rows}, nil
}

func (e *Evaluator) fetchResults(ctx context.Context, runs []domain.TestRun) ([][]domain.TestResult, error) {
	results := make([][]domain.TestResult, len(runs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(e.cfg.FetchConcurrency, 1))

	for i, run := range runs {
		g.Go(func() error {
			res, err := e.reader.ListResults(gctx, run.ID)
			if err != nil {
				return fmt.Errorf("list results of run %q: %w", run.Name, err)
			}
			results[i] = res
			slog.Debug("Fetched run results", "run", run.Name, "results", len(res))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
