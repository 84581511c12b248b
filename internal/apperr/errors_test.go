package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/chunk-bench/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewValidationWrap("invalid dataset", inner)

	assert.Equal(t, "invalid dataset: parse failed", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Nil(t, apperr.NewValidation("x").Unwrap())
}

func TestInvalidParameter_SurvivesFmtWrapping(t *testing.T) {
	wrapped := fmt.Errorf("impact: %w", apperr.NewInvalidParameter("chunk_colour"))

	var pe *apperr.InvalidParameterError
	require.True(t, errors.As(wrapped, &pe))
	assert.Equal(t, "chunk_colour", pe.Key)
	assert.Contains(t, wrapped.Error(), `invalid parameter "chunk_colour"`)
}

func TestEmptyInput_Is(t *testing.T) {
	err := fmt.Errorf("select best: %w", apperr.ErrEmptyInput)
	assert.ErrorIs(t, err, apperr.ErrEmptyInput)

	var ve *apperr.ValidationError
	assert.False(t, errors.As(err, &ve))
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{name: "validation", err: apperr.NewValidation("bad"), status: http.StatusBadRequest, body: "validation error"},
		{name: "invalid parameter", err: apperr.NewInvalidParameter("nope"), status: http.StatusBadRequest, body: "invalid parameter"},
		{name: "empty input", err: fmt.Errorf("evaluate: %w", apperr.ErrEmptyInput), status: http.StatusNotFound, body: "no data"},
		{name: "echo error", err: echo.NewHTTPError(http.StatusTeapot, "short and stout"), status: http.StatusTeapot, body: "short and stout"},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError, body: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			apperr.GlobalErrorHandler()(tt.err, c)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}
