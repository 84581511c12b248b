package router

import (
	"context"
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/chunk-bench/internal/analysis"
	"github.com/DjordjeVuckovic/chunk-bench/internal/apperr"
	"github.com/DjordjeVuckovic/chunk-bench/internal/evaluator"
	"github.com/DjordjeVuckovic/chunk-bench/internal/report"
	"github.com/DjordjeVuckovic/chunk-bench/pkg/pagination"
	"github.com/DjordjeVuckovic/chunk-bench/pkg/utils"
	"github.com/labstack/echo/v4"
)

// Evaluator is the part of evaluator.Evaluator the HTTP layer needs.
type Evaluator interface {
	Evaluate(ctx context.Context) (*evaluator.Evaluation, error)
	Impact(ctx context.Context, key string, values []string) (analysis.ParameterImpact, error)
	CompareModels(ctx context.Context) ([]analysis.ImpactRow, error)
}

// RankedPage documents the /runs response shape.
type RankedPage = pagination.OffsetResult[report.RankedEntry]

type EvaluationRouter struct {
	e           *echo.Echo
	evaluator   Evaluator
	defaultTopN int
}

type EvaluationRouterOption func(*EvaluationRouter)

// WithDefaultTopN sets the ranked list size used when ?top is absent.
func WithDefaultTopN(n int) EvaluationRouterOption {
	return func(r *EvaluationRouter) {
		r.defaultTopN = n
	}
}

func NewEvaluationRouter(e *echo.Echo, ev Evaluator, opts ...EvaluationRouterOption) *EvaluationRouter {
	r := &EvaluationRouter{e: e, evaluator: ev}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *EvaluationRouter) Bind() {
	r.e.GET("/report", r.report)
	r.e.GET("/runs", r.runs)
	r.e.GET("/runs/best", r.best)
	r.e.GET("/impact/:parameter", r.impact)
	r.e.GET("/models", r.models)
}

// report godoc
// @Summary Full evaluation report
// @Description Ranked runs, best configuration, parameter impact tables and model comparison
// @Tags evaluation
// @Produce json
// @Param top query int false "Number of ranked runs to include, 0 for all"
// @Success 200 {object} report.Report
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /report [get]
func (r *EvaluationRouter) report(c echo.Context) error {
	top, err := r.topParam(c)
	if err != nil {
		return err
	}

	ev, err := r.evaluator.Evaluate(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report.Generate(ev, top))
}

// runs godoc
// @Summary Ranked runs
// @Description Runs ordered by answers found, then by mean answer rank, one page at a time
// @Tags evaluation
// @Produce json
// @Param page query int false "1-based page number"
// @Param size query int false "Page size, defaults to 100"
// @Success 200 {object} pagination.OffsetResult[report.RankedEntry]
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /runs [get]
func (r *EvaluationRouter) runs(c echo.Context) error {
	var req pagination.OffsetRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("page and size must be integers", err)
	}

	ev, err := r.evaluator.Evaluate(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.Paginate(report.RankedEntries(ev.Ranked, 0), req))
}

// best godoc
// @Summary Best configuration
// @Tags evaluation
// @Produce json
// @Success 200 {object} report.RankedEntry
// @Failure 404 {object} map[string]string
// @Router /runs/best [get]
func (r *EvaluationRouter) best(c echo.Context) error {
	ev, err := r.evaluator.Evaluate(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report.BestEntry(ev.Best))
}

// impact godoc
// @Summary Single-parameter impact
// @Description Mean answers found per candidate value among baseline-model runs
// @Tags evaluation
// @Produce json
// @Param parameter path string true "Parameter" Enums(chunk_size_words, chunk_overlap_words, chip_count, chip_position, embedding_model)
// @Param values query string false "Comma separated candidate values, defaults to every observed value"
// @Success 200 {object} report.ImpactTable
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /impact/{parameter} [get]
func (r *EvaluationRouter) impact(c echo.Context) error {
	values := utils.SplitTrim(c.QueryParam("values"), ",")

	impact, err := r.evaluator.Impact(c.Request().Context(), c.Param("parameter"), values)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report.NewImpactTable(impact))
}

// models godoc
// @Summary Embedding model comparison
// @Tags evaluation
// @Produce json
// @Success 200 {array} report.ImpactEntry
// @Failure 404 {object} map[string]string
// @Router /models [get]
func (r *EvaluationRouter) models(c echo.Context) error {
	rows, err := r.evaluator.CompareModels(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report.ImpactEntries(rows))
}

func (r *EvaluationRouter) topParam(c echo.Context) (int, error) {
	raw := c.QueryParam("top")
	if raw == "" {
		return r.defaultTopN, nil
	}

	top, err := strconv.Atoi(raw)
	if err != nil || top < 0 {
		return 0, apperr.NewValidation("top must be a non-negative integer")
	}
	return top, nil
}
