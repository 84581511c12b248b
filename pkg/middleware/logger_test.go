package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func serve(e *echo.Echo, target string) {
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	e.Use(Logger(
		WithLogger(l),
		WithSkipper(func(c echo.Context) bool { return c.Path() == "/health" }),
	))
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/fail", func(c echo.Context) error { return errors.New("boom") })
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	serve(e, "/ok")
	assert.Contains(t, buf.String(), "msg=REQUEST")
	assert.Contains(t, buf.String(), "method=GET")
	assert.Contains(t, buf.String(), "uri=/ok")
	assert.Contains(t, buf.String(), "status=200")

	buf.Reset()
	serve(e, "/fail")
	assert.Contains(t, buf.String(), "msg=REQUEST_ERROR")
	assert.Contains(t, buf.String(), "err=boom")

	buf.Reset()
	serve(e, "/health")
	assert.Empty(t, buf.String())
}
